package entity

import (
	"time"
)

type Location struct {
	Region         string `json:"region" firestore:"region"`
	City           string `json:"city" firestore:"city"`
	District       string `json:"district,omitempty" firestore:"district,omitempty"`
	StreetAddress  string `json:"street_address,omitempty" firestore:"streetAddress,omitempty"`
	Landmark       string `json:"landmark,omitempty" firestore:"landmark,omitempty"`
	GPSCoordinates string `json:"gps_coordinates,omitempty" firestore:"gpsCoordinates,omitempty"`
}

type Utilities struct {
	Electricity string `json:"electricity,omitempty" firestore:"electricity,omitempty"`
	Water       string `json:"water,omitempty" firestore:"water,omitempty"`
	Internet    bool   `json:"internet" firestore:"internet"`
	Cable       bool   `json:"cable" firestore:"cable"`
	Gas         bool   `json:"gas" firestore:"gas"`
}

type Security struct {
	Level    string   `json:"level" firestore:"level"`
	Features []string `json:"features,omitempty" firestore:"features,omitempty"`
}

type Policies struct {
	PetsAllowed    bool `json:"pets_allowed" firestore:"petsAllowed"`
	SmokingAllowed bool `json:"smoking_allowed" firestore:"smokingAllowed"`
	PartiesAllowed bool `json:"parties_allowed" firestore:"partiesAllowed"`
}

// LandlordInfo is a denormalized contact snapshot taken at listing
// creation so cards render without a second user lookup.
type LandlordInfo struct {
	Name  string `json:"name" firestore:"name"`
	Phone string `json:"phone" firestore:"phone"`
	Email string `json:"email,omitempty" firestore:"email,omitempty"`
}

type Listing struct {
	ID           string       `json:"id" firestore:"id"`
	LandlordID   string       `json:"landlord_id" firestore:"landlordId"`
	LandlordInfo LandlordInfo `json:"landlord_info" firestore:"landlordInfo"`

	Title        string   `json:"title" firestore:"title"`
	Description  string   `json:"description" firestore:"description"`
	PropertyType string   `json:"property_type" firestore:"propertyType"`
	Price        float64  `json:"price" firestore:"price"`
	PaymentTerm  string   `json:"payment_term" firestore:"paymentTerm"`
	Bedrooms     int      `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms" firestore:"bathrooms"`
	Furnished    string   `json:"furnished" firestore:"furnished"`
	Location     Location `json:"location" firestore:"location"`
	Images       []string `json:"images,omitempty" firestore:"images,omitempty"`

	Amenities []string  `json:"amenities,omitempty" firestore:"amenities,omitempty"`
	Features  []string  `json:"features,omitempty" firestore:"features,omitempty"`
	Utilities Utilities `json:"utilities" firestore:"utilities"`
	Security  *Security `json:"security,omitempty" firestore:"security,omitempty"`
	Policies  Policies  `json:"policies" firestore:"policies"`

	Noise         string `json:"noise,omitempty" firestore:"noise,omitempty"`
	RoadCondition string `json:"road_condition,omitempty" firestore:"roadCondition,omitempty"`
	RentAdvance   string `json:"rent_advance,omitempty" firestore:"rentAdvance,omitempty"`

	Status    string    `json:"status" firestore:"status"`
	Featured  bool      `json:"featured" firestore:"featured"`
	Views     int       `json:"views" firestore:"views"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	ListingStatusPending  = "pending"
	ListingStatusActive   = "active"
	ListingStatusInactive = "inactive"
	ListingStatusRejected = "rejected"
)

// CanTransitionStatus reports whether a listing may move between the two
// statuses. Rejected is terminal.
func CanTransitionStatus(from, to string) bool {
	switch from {
	case ListingStatusPending:
		return to == ListingStatusActive || to == ListingStatusRejected
	case ListingStatusActive:
		return to == ListingStatusInactive
	case ListingStatusInactive:
		return to == ListingStatusActive
	}
	return false
}
