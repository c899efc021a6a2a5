// Command seed-admin creates (or promotes) the first admin account. Role
// promotion is otherwise admin-gated, so a fresh deployment needs this once.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	var email, name string
	flag.StringVar(&email, "email", "", "Email of the admin account")
	flag.StringVar(&name, "name", "Administrator", "Display name for a newly created account")
	flag.Parse()

	if email == "" {
		log.Fatal("-email is required")
	}

	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer conn.Close(ctx)

	var id int
	err = conn.QueryRow(ctx,
		`INSERT INTO users (name, email, role) VALUES ($1, $2, 'admin')
		 ON CONFLICT (email) DO UPDATE SET role = 'admin'
		 RETURNING id`, name, email,
	).Scan(&id)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	fmt.Printf("Admin ready: %s (id %d)\n", email, id)
}
