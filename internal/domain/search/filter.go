package search

import (
	"strconv"
	"strings"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
)

// FilterSet holds one browsing session's active constraints. The zero
// value of every field means "no constraint"; prices of zero are treated
// as unset because a valid listing price is always positive.
type FilterSet struct {
	Query           string
	Region          string
	City            string
	PropertyType    string
	MinPrice        float64
	MaxPrice        float64
	Bedrooms        string
	Furnished       string
	ElectricityType string
	WaterSource     string
	NoiseLevel      string
	RoadCondition   string
	SecurityLevel   string
	RentAdvance     string
	HasInternet     bool
	HasParking      bool
	HasGenerator    bool
}

// Matches reports whether the listing satisfies every set filter field.
// It is pure and never panics on listings with missing attribute groups:
// a listing without a security block simply fails any security filter.
func Matches(l *entity.Listing, f FilterSet) bool {
	if l == nil {
		return false
	}

	if f.Query != "" && !matchesQuery(l, f.Query) {
		return false
	}
	if f.Region != "" && l.Location.Region != f.Region {
		return false
	}
	if f.City != "" && l.Location.City != f.City {
		return false
	}
	if f.PropertyType != "" && l.PropertyType != f.PropertyType {
		return false
	}
	if f.MinPrice > 0 && l.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && l.Price > f.MaxPrice {
		return false
	}
	if f.Bedrooms != "" && !matchesBedrooms(l.Bedrooms, f.Bedrooms) {
		return false
	}
	if f.Furnished != "" && l.Furnished != f.Furnished {
		return false
	}
	if f.ElectricityType != "" && !strings.EqualFold(l.Utilities.Electricity, f.ElectricityType) {
		return false
	}
	// Water sources are stored as free-form phrases ("Pipe Borne Supply"),
	// so this one filter matches by substring rather than equality.
	if f.WaterSource != "" && !containsFold(l.Utilities.Water, f.WaterSource) {
		return false
	}
	if f.NoiseLevel != "" && !strings.EqualFold(l.Noise, f.NoiseLevel) {
		return false
	}
	if f.RoadCondition != "" && !strings.EqualFold(l.RoadCondition, f.RoadCondition) {
		return false
	}
	if f.SecurityLevel != "" {
		if l.Security == nil || !strings.EqualFold(l.Security.Level, f.SecurityLevel) {
			return false
		}
	}
	if f.RentAdvance != "" && !strings.Contains(l.RentAdvance, f.RentAdvance) {
		return false
	}
	if f.HasInternet && !hasInternet(l) {
		return false
	}
	if f.HasParking && !hasAmenity(l.Amenities, "parking") {
		return false
	}
	if f.HasGenerator && !hasAmenity(l.Amenities, "generator") {
		return false
	}

	return true
}

func matchesQuery(l *entity.Listing, query string) bool {
	q := strings.ToLower(query)
	return containsFold(l.Title, q) ||
		containsFold(l.Description, q) ||
		containsFold(l.Location.City, q) ||
		containsFold(l.Location.District, q) ||
		containsFold(l.Location.Region, q)
}

// matchesBedrooms compares the filter value literally. The browse UI
// offers a "6+" bucket which is not numeric and therefore matches no
// stored bedroom count; a seven-bedroom listing does not match "6+".
func matchesBedrooms(bedrooms int, filter string) bool {
	n, err := strconv.Atoi(filter)
	if err != nil {
		return false
	}
	return bedrooms == n
}

func hasInternet(l *entity.Listing) bool {
	if l.Utilities.Internet {
		return true
	}
	for _, a := range l.Amenities {
		if containsFold(a, "wi-fi") || containsFold(a, "internet") {
			return true
		}
	}
	return false
}

func hasAmenity(amenities []string, needle string) bool {
	for _, a := range amenities {
		if containsFold(a, needle) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
