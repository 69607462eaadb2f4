package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/shoppy/storefront/config"
	"github.com/shoppy/storefront/internal/domain/entity"
	"github.com/shoppy/storefront/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@shoppy.local"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	cart, _ := json.Marshal(entity.NewCart(cfg.CartSeedSize))

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, cart)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, cart).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	products := []struct {
		name, image, category string
		newPrice, oldPrice    float64
	}{
		{"Striped Flutter Sleeve Blouse", "https://storage.googleapis.com/shoppy-demo/product_1.png", "women", 50, 80.5},
		{"Colorblocked Zipper Hoodie", "https://storage.googleapis.com/shoppy-demo/product_2.png", "men", 85, 120},
		{"Kids Bomber Jacket", "https://storage.googleapis.com/shoppy-demo/product_3.png", "kid", 60, 100},
		{"Peplum Crop Top", "https://storage.googleapis.com/shoppy-demo/product_4.png", "women", 45, 70},
	}
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (num, name, image, category, new_price, old_price, available)
			SELECT COALESCE(MAX(num), 0) + 1, $1, $2, $3, $4, $5, true FROM products
		`, p.name, p.image, p.category, p.newPrice, p.oldPrice); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d products\n", len(products))
}
