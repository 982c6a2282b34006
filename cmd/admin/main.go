package main

import (
	"fmt"
	"log"
	"os"

	"swapx/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: removebook <book_id> | availability <book_id> <on|off> | matches <user_id>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "removebook":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin removebook <book_id>")
			os.Exit(1)
		}
		bookID := os.Args[2]
		if err := storageSvc.DeleteBook(bookID); err != nil {
			log.Fatalf("failed to delete book %s: %v", bookID, err)
		}
		fmt.Printf("Book %s deleted.\n", bookID)

	case "availability":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin availability <book_id> <on|off>")
			os.Exit(1)
		}
		bookID := os.Args[2]
		available := os.Args[3] == "on"
		if err := storageSvc.SetBookAvailability(bookID, available); err != nil {
			log.Fatalf("failed to update availability for book %s: %v", bookID, err)
		}
		fmt.Printf("Book %s availability set to %v.\n", bookID, available)

	case "matches":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin matches <user_id>")
			os.Exit(1)
		}
		userID := os.Args[2]
		matches, err := storageSvc.GetMatchesForUser(userID)
		if err != nil {
			log.Fatalf("failed to list matches for user %s: %v", userID, err)
		}
		for _, m := range matches {
			fmt.Printf("%s  %s <-> %s  (books %s / %s)  %s\n",
				m.ID, m.User1ID, m.User2ID, m.Book1ID, m.Book2ID,
				m.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Printf("%d match(es).\n", len(matches))

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
