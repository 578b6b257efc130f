package models

// WishlistItem is one offer a user wants to be told about.
type WishlistItem struct {
	OwnerID int64  `json:"owner_id"`
	OfferID string `json:"offer_id"`
}

func (w WishlistItem) TableName() string {
	return "wishlist"
}
