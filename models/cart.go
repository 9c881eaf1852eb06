package models

import "time"

// CartItem links a buyer to a product placed in their cart.
type CartItem struct {
	CartItemID int64     `json:"id"`
	BuyerID    int64     `json:"buyer_id"`
	ProductID  int64     `json:"product_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CartItem model.
func (c CartItem) TableName() string {
	return "carts"
}
