package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres builds the process-wide pool. Each request checks out its
// own connection from the pool, so unrelated requests never share a handle.
func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the tables and seeds the two default platforms.
// Safe to run on every start.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS platforms (
			id BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS shops (
			id BIGSERIAL PRIMARY KEY,
			platform_id BIGINT NOT NULL REFERENCES platforms(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			delivery_distance DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			delivery_time INT,
			delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
			monthly_sales BIGINT NOT NULL DEFAULT 0,
			min_order DOUBLE PRECISION NOT NULL DEFAULT 0,
			avg_consumption DOUBLE PRECISION NOT NULL DEFAULT 0,
			image_url TEXT,
			created_at TIMESTAMPTZ DEFAULT now(),
			UNIQUE (platform_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS coupons (
			id BIGSERIAL PRIMARY KEY,
			shop_id BIGINT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			condition_amount DOUBLE PRECISION NOT NULL,
			discount_amount DOUBLE PRECISION NOT NULL,
			valid_from TIMESTAMPTZ,
			valid_to TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS dishes (
			id BIGSERIAL PRIMARY KEY,
			shop_id BIGINT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now(),
			UNIQUE (shop_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS favorites (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			shop_id BIGINT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ DEFAULT now(),
			PRIMARY KEY (user_id, shop_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	// Default platform rows; these two are the first-class comparison slots.
	for _, name := range []string{"meituan", "ele"} {
		_, err := pool.Exec(ctx, `
			INSERT INTO platforms (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return err
		}
	}

	log.Println("[DB] schema initialized")
	return nil
}
