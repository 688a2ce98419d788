// Command admin is a small ops CLI for moderating the marketplace over the
// same storage layer the server uses: listing open gigs and removing spam
// postings together with their bids.
package main

import (
	"fmt"
	"log"
	"os"

	"gigflow/backend/internal/storage"

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
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list-gigs [search], bids <gig_id>, delete-gig <gig_id>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list-gigs":
		search := ""
		if len(os.Args) > 2 {
			search = os.Args[2]
		}
		gigs, err := storageSvc.ListOpenGigs(search)
		if err != nil {
			log.Fatalf("Error listing gigs: %v", err)
		}
		for _, g := range gigs {
			owner := g.OwnerID
			if g.Owner != nil {
				owner = g.Owner.Email
			}
			fmt.Printf("%s  %-30q  budget=%.2f  owner=%s\n", g.ID, g.Title, g.Budget, owner)
		}
		fmt.Printf("%d open gig(s)\n", len(gigs))
	case "bids":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin bids <gig_id>")
			os.Exit(1)
		}
		bids, err := storageSvc.GetBidsForGig(os.Args[2])
		if err != nil {
			log.Fatalf("Error listing bids: %v", err)
		}
		for _, b := range bids {
			fmt.Printf("%s  %-8s  price=%.2f  freelancer=%s\n", b.ID, b.Status, b.Price, b.FreelancerID)
		}
		fmt.Printf("%d bid(s)\n", len(bids))
	case "delete-gig":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete-gig <gig_id>")
			os.Exit(1)
		}
		if err := storageSvc.DeleteGig(os.Args[2]); err != nil {
			log.Fatalf("Error deleting gig: %v", err)
		}
		fmt.Printf("Gig %s and its bids have been deleted.\n", os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
