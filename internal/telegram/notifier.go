// Package telegram pushes out-of-band notifications over the Telegram
// Bot API, so users hear about new matches even when no client is
// connected. Chat itself stays in-app; the bot is a one-way side channel.
package telegram

import (
	"log"

	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers match notifications to users who linked the bot.
type Notifier struct {
	BotAPI  *tgbotapi.BotAPI
	Storage storage.Storage
}

// NewNotifier creates a Notifier from a bot token.
func NewNotifier(token string, s storage.Storage) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Authorized on account %s", bot.Self.UserName)

	return &Notifier{BotAPI: bot, Storage: s}, nil
}

// Run consumes bot updates and handles account linking. A user links by
// sending "/link <userID>" from the Telegram account they want pushes on.
func (n *Notifier) Run() {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	for update := range n.BotAPI.GetUpdatesChan(updateConfig) {
		msg := update.Message
		if msg == nil || !msg.IsCommand() {
			continue
		}

		switch msg.Command() {
		case "start":
			n.reply(msg.Chat.ID, "Hi! Send /link <your user id> to receive match notifications.")

		case "link":
			userID := msg.CommandArguments()
			if userID == "" {
				n.reply(msg.Chat.ID, "Usage: /link <your user id>")
				continue
			}
			user, err := n.Storage.GetUserByID(userID)
			if err != nil || user == nil {
				n.reply(msg.Chat.ID, "Unknown user id. Check your profile page for it.")
				continue
			}
			if err := n.Storage.LinkTelegramChat(userID, msg.Chat.ID); err != nil {
				log.Printf("ERROR: Failed to link Telegram chat for user %s: %v", userID, err)
				n.reply(msg.Chat.ID, "Something went wrong. Try again later.")
				continue
			}
			n.reply(msg.Chat.ID, "Linked! You'll get a message when you have a new match.")
		}
	}
}

// NotifyMatch pushes a match notification to both participants that have
// a linked chat. Failures are logged and otherwise ignored; the in-app
// feed already carries the event.
func (n *Notifier) NotifyMatch(match *models.Match) {
	for _, userID := range []string{match.User1ID, match.User2ID} {
		user, err := n.Storage.GetUserByID(userID)
		if err != nil || user == nil || user.TelegramChatID == nil {
			continue
		}
		n.reply(*user.TelegramChatID, "It's a match! Open the app to start chatting.")
	}
}

func (n *Notifier) reply(chatID int64, text string) {
	if _, err := n.BotAPI.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("ERROR: Failed to send Telegram message to chat %d: %v", chatID, err)
	}
}
