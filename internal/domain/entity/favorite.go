package entity

import (
	"time"
)

// Favorite links a user to a listing they saved. The document ID is
// "<userID>_<listingID>" so the pair can never be stored twice.
type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ListingID string    `json:"listing_id" firestore:"listingId"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}

func FavoriteID(userID, listingID string) string {
	return userID + "_" + listingID
}

type FavoriteWithListing struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Listing   *Listing  `json:"listing"`
	AddedAt   time.Time `json:"added_at"`
}
