package ingest

import "github.com/jackc/pgx/v5/pgxpool"

// Product is a single record from a store catalog export.
// Numeric fields arrive in mixed shapes ("1TB", "512GB", 512),
// normalization happens in Normalize.
type Product struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Color       string  `json:"color"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Stock       string  `json:"stock"`
	RAM         int     `json:"ram"`
	Storage     int     `json:"storage"`
	Description string  `json:"description"`
	Evaluate    string  `json:"evaluate"`
}

// database client for the products table
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
