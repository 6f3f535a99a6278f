package entity

import (
	"time"
)

type Role string

const (
	RoleRenter   Role = "renter"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

// ValidSignupRole reports whether a role may be chosen at registration.
// Admin accounts are provisioned out of band, never self-assigned.
func ValidSignupRole(r Role) bool {
	return r == RoleRenter || r == RoleLandlord
}

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Phone     string `json:"phone" firestore:"phone"`
	Role      Role   `json:"role" firestore:"role"`

	IsVerified      bool `json:"is_verified" firestore:"isVerified"`
	IsEmailVerified bool `json:"is_email_verified" firestore:"isEmailVerified"`
	IsPremium       bool `json:"is_premium" firestore:"isPremium"`

	Bio      string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Location string `json:"location,omitempty" firestore:"location,omitempty"`

	// Landlord-only fields, empty for renters.
	GhanaCardNumber string `json:"ghana_card_number,omitempty" firestore:"ghanaCardNumber,omitempty"`
	MomoNumber      string `json:"momo_number,omitempty" firestore:"momoNumber,omitempty"`
	BusinessName    string `json:"business_name,omitempty" firestore:"businessName,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
