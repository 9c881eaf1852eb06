package models

import "time"

// Product is an item listed by a seller.
type Product struct {
	ProductID   int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	SellerID    int64     `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductSearch filters products by case-insensitive substring match.
// Empty fields are ignored; a product matches when any supplied field
// matches. With no fields every product matches.
type ProductSearch struct {
	Name     string
	Category string
}

// IsEmpty reports whether no filter was supplied.
func (s ProductSearch) IsEmpty() bool {
	return s.Name == "" && s.Category == ""
}
