package entity

import "time"

// Product is a catalog record. Num is the application-level sequential id
// the storefront uses in URLs and cart item keys; ID is the store-assigned
// key.
type Product struct {
	ID        string    `json:"-"`
	Num       int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
}
