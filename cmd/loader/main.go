package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/HUST-25-SE/SaveBite/internal/auth"
	"github.com/HUST-25-SE/SaveBite/internal/catalog"
	"github.com/HUST-25-SE/SaveBite/internal/db"
	"github.com/HUST-25-SE/SaveBite/internal/loader"
)

func main() {
	reset := flag.Bool("reset", false, "clear shops, dishes, coupons and favorites before loading")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: loader [--reset] <data.json>")
	}

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("❌ Missing env var: DATABASE_URL")
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read %s: %v", flag.Arg(0), err)
	}

	var doc loader.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("parse %s: %v", flag.Arg(0), err)
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	users := auth.NewService(auth.NewPostgresUserRepository(pgDB))
	catalogService := catalog.NewService(catalog.NewPostgresRepository(pgDB))

	report, err := loader.New(users, catalogService).Run(context.Background(), doc, *reset)
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}

	log.Printf("users:     %+v", report.Users)
	log.Printf("platforms: %+v", report.Platforms)
	log.Printf("shops:     %+v", report.Shops)
	log.Printf("dishes:    %+v", report.Dishes)
	log.Printf("coupons:   %+v", report.Coupons)
}
