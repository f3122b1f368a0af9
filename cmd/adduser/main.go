package main

import (
	"flag"
	"log"

	"github.com/beelineschool-pixel/account/app/config"
	"github.com/beelineschool-pixel/account/app/models"
	"github.com/beelineschool-pixel/account/app/routes/auth"
	"github.com/beelineschool-pixel/account/app/store"
)

// Seeds a staff login so the API can be used. Run once per user:
//
//	go run ./cmd/adduser -username admin -name "Front Desk" -password secret
func main() {
	username := flag.String("username", "", "login username")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}

	cfg := config.Load()
	defer cfg.DB.Close()

	kv, err := store.NewPostgresKV(cfg.DB)
	if err != nil {
		log.Fatal("Failed to prepare record store:", err)
	}
	recordStore := store.New(kv)

	if _, exists, err := recordStore.FindUserByUsername(*username); err != nil {
		log.Fatal(err)
	} else if exists {
		log.Fatalf("user %q already exists", *username)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	users, err := recordStore.Users()
	if err != nil {
		log.Fatal(err)
	}
	id, err := recordStore.NextID(store.CollectionUsers)
	if err != nil {
		log.Fatal(err)
	}
	users = append(users, models.User{
		ID:           id,
		Username:     *username,
		Name:         *name,
		PasswordHash: hash,
	})
	if err := recordStore.SaveUsers(users); err != nil {
		log.Fatal(err)
	}
	log.Printf("Created user %q (id %d)", *username, id)
}
