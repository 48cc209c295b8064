package models

import "time"

// Categories is the closed set of product categories the storefront sells.
// Payloads carrying any other value are rejected at validation time.
var Categories = []string{"Electronics", "Accessories", "Storage", "Peripherals", "Cables"}

// Product represents a product in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(100)"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category" gorm:"index;type:varchar(50)"`
	Inventory   int       `json:"inventory"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	LastUpdated time.Time `json:"lastUpdated"`
}
