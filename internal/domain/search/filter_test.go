package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
)

func sampleListing() *entity.Listing {
	return &entity.Listing{
		ID:           "l1",
		Title:        "Spacious 2 Bedroom Apartment in East Legon",
		Description:  "A well-maintained apartment close to the American House junction with reliable utilities.",
		PropertyType: "Apartment",
		Price:        2500,
		Bedrooms:     2,
		Bathrooms:    2,
		Furnished:    "Furnished",
		Location: entity.Location{
			Region:   "Greater Accra",
			City:     "Accra",
			District: "East Legon",
		},
		Amenities: []string{"Wi-Fi", "Parking Space", "Standby Generator"},
		Utilities: entity.Utilities{
			Electricity: "Prepaid Meter",
			Water:       "Pipe Borne Supply",
			Internet:    false,
		},
		Security: &entity.Security{
			Level:    "High",
			Features: []string{"CCTV", "Security Guard"},
		},
		Noise:         "Quiet",
		RoadCondition: "Tarred",
		RentAdvance:   "1 Year Advance",
		Status:        entity.ListingStatusActive,
	}
}

func TestMatchesEmptyFilterPassesEverything(t *testing.T) {
	assert.True(t, Matches(sampleListing(), FilterSet{}))
	assert.True(t, Matches(&entity.Listing{}, FilterSet{}))
}

func TestMatchesNilListing(t *testing.T) {
	assert.False(t, Matches(nil, FilterSet{}))
}

func TestMatchesTextQuery(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{Query: "east legon"}), "district should match case-insensitively")
	assert.True(t, Matches(l, FilterSet{Query: "SPACIOUS"}), "title should match case-insensitively")
	assert.True(t, Matches(l, FilterSet{Query: "accra"}), "city and region should match")
	assert.True(t, Matches(l, FilterSet{Query: "american house"}), "description should match")
	assert.False(t, Matches(l, FilterSet{Query: "kumasi"}))
}

func TestMatchesExactFields(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{Region: "Greater Accra"}))
	assert.False(t, Matches(l, FilterSet{Region: "greater accra"}), "region comparison is case-sensitive")
	assert.True(t, Matches(l, FilterSet{City: "Accra"}))
	assert.False(t, Matches(l, FilterSet{City: "Tema"}))
	assert.True(t, Matches(l, FilterSet{PropertyType: "Apartment"}))
	assert.False(t, Matches(l, FilterSet{PropertyType: "House"}))
	assert.True(t, Matches(l, FilterSet{Furnished: "Furnished"}))
	assert.False(t, Matches(l, FilterSet{Furnished: "Unfurnished"}))
}

func TestMatchesPriceBounds(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{MinPrice: 2000, MaxPrice: 3000}))
	assert.True(t, Matches(l, FilterSet{MinPrice: 2500, MaxPrice: 2500}), "bounds are inclusive")
	assert.False(t, Matches(l, FilterSet{MinPrice: 2600}))
	assert.False(t, Matches(l, FilterSet{MaxPrice: 2400}))
	assert.True(t, Matches(l, FilterSet{MinPrice: 0, MaxPrice: 0}), "zero bounds are unset")
}

func TestMatchesBedrooms(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{Bedrooms: "2"}))
	assert.False(t, Matches(l, FilterSet{Bedrooms: "3"}))
}

func TestMatchesBedroomsSixPlusBucket(t *testing.T) {
	l := sampleListing()
	l.Bedrooms = 7

	// "6+" is not numeric, so it matches no listing at all.
	assert.False(t, Matches(l, FilterSet{Bedrooms: "6+"}))
	l.Bedrooms = 6
	assert.False(t, Matches(l, FilterSet{Bedrooms: "6+"}))
}

func TestMatchesUtilityFilters(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{ElectricityType: "prepaid meter"}), "electricity ignores case")
	assert.False(t, Matches(l, FilterSet{ElectricityType: "Postpaid"}))
	assert.True(t, Matches(l, FilterSet{WaterSource: "pipe borne"}), "water matches by substring")
	assert.False(t, Matches(l, FilterSet{WaterSource: "Borehole"}))
	assert.True(t, Matches(l, FilterSet{NoiseLevel: "quiet"}))
	assert.True(t, Matches(l, FilterSet{RoadCondition: "TARRED"}))
}

func TestMatchesSecurityLevel(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{SecurityLevel: "high"}))
	assert.False(t, Matches(l, FilterSet{SecurityLevel: "Low"}))

	l.Security = nil
	assert.False(t, Matches(l, FilterSet{SecurityLevel: "High"}), "missing security block fails the filter")
	assert.True(t, Matches(l, FilterSet{}), "missing security block passes when unfiltered")
}

func TestMatchesRentAdvance(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{RentAdvance: "1 Year"}), "rent advance matches by substring")
	assert.False(t, Matches(l, FilterSet{RentAdvance: "1 year"}), "rent advance comparison is case-sensitive")
	assert.False(t, Matches(l, FilterSet{RentAdvance: "2 Years"}))
}

func TestMatchesInternet(t *testing.T) {
	l := sampleListing()

	// Utilities flag is off but the Wi-Fi amenity counts.
	assert.True(t, Matches(l, FilterSet{HasInternet: true}))

	l.Amenities = []string{"Parking Space"}
	assert.False(t, Matches(l, FilterSet{HasInternet: true}))

	l.Utilities.Internet = true
	assert.True(t, Matches(l, FilterSet{HasInternet: true}))
}

func TestMatchesAmenityFlags(t *testing.T) {
	l := sampleListing()

	assert.True(t, Matches(l, FilterSet{HasParking: true}))
	assert.True(t, Matches(l, FilterSet{HasGenerator: true}))

	l.Amenities = nil
	assert.False(t, Matches(l, FilterSet{HasParking: true}))
	assert.False(t, Matches(l, FilterSet{HasGenerator: true}))
}

func TestMatchesCombinedFilters(t *testing.T) {
	l := sampleListing()

	f := FilterSet{
		Region:       "Greater Accra",
		PropertyType: "Apartment",
		MinPrice:     2000,
		MaxPrice:     3000,
		Bedrooms:     "2",
		HasParking:   true,
	}
	assert.True(t, Matches(l, f))

	// One failing field fails the whole conjunction.
	f.MaxPrice = 2400
	assert.False(t, Matches(l, f))
}
