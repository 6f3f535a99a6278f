package entity

// GhanaRegions are the sixteen administrative regions a listing may be
// located in. Region is the only location field that is strictly validated.
var GhanaRegions = []string{
	"Greater Accra",
	"Ashanti",
	"Western",
	"Eastern",
	"Central",
	"Northern",
	"Upper East",
	"Upper West",
	"Volta",
	"Brong-Ahafo",
	"Western North",
	"Ahafo",
	"Bono East",
	"North East",
	"Savannah",
	"Oti",
}

func IsGhanaRegion(region string) bool {
	for _, r := range GhanaRegions {
		if r == region {
			return true
		}
	}
	return false
}

// GhanaCities lists the known cities per region. City is advisory: a
// listing may carry a city outside this list.
var GhanaCities = map[string][]string{
	"Greater Accra": {
		"Accra", "Tema", "Kasoa", "Madina", "Adenta", "Ga East", "Ga West",
		"Ashaiman", "Teshie", "Nungua", "Dansoman", "Achimota", "East Legon",
		"Airport Residential", "Cantonments", "Labone", "Osu", "Dzorwulu",
	},
	"Ashanti": {
		"Kumasi", "Obuasi", "Ejisu", "Juaben", "Bekwai", "Mampong", "Konongo",
		"Asante Akim", "Asokore Mampong", "Ejura", "Offinso",
	},
	"Western": {
		"Sekondi-Takoradi", "Tarkwa", "Prestea", "Axim", "Half Assini",
		"Elubo", "Enchi", "Wiawso", "Sefwi Bekwai",
	},
	"Eastern": {
		"Koforidua", "Akosombo", "New Tafo", "Akim Oda", "Mpraeso",
		"Begoro", "Somanya", "Akropong", "Aburi", "Nsawam",
	},
	"Central": {
		"Cape Coast", "Elmina", "Winneba", "Kasoa", "Swedru", "Dunkwa",
		"Agona Swedru", "Saltpond", "Anomabu",
	},
	"Northern": {
		"Tamale", "Yendi", "Savelugu", "Gushegu", "Karaga", "Tolon",
		"Kumbungu", "Sagnarigu",
	},
	"Volta": {
		"Ho", "Hohoe", "Keta", "Aflao", "Sogakope", "Dzodze", "Akatsi",
		"Kpando", "Jasikan", "Kadjebi",
	},
	"Upper East": {
		"Bolgatanga", "Bawku", "Navrongo", "Paga", "Zebilla", "Garu",
		"Tempane", "Binduri",
	},
	"Upper West": {
		"Wa", "Lawra", "Jirapa", "Tumu", "Nadowli", "Funsi", "Gwollu",
	},
}

var PropertyTypes = []string{
	"Single Room",
	"Chamber and Hall",
	"Two Bedroom",
	"Three Bedroom",
	"Four Bedroom",
	"Five+ Bedroom",
	"Apartment",
	"Studio",
	"House",
	"Commercial Space",
	"Office Space",
	"Shop",
	"Warehouse",
}

var PaymentTerms = []string{
	"Monthly",
	"Quarterly",
	"6 Months",
	"Yearly",
	"2 Years",
	"3 Years",
	"Negotiable",
}

var FurnishedStatuses = []string{
	"Fully Furnished",
	"Semi-Furnished",
	"Unfurnished",
}

var Amenities = []string{
	"Air Conditioning",
	"Heating",
	"Wi-Fi",
	"Cable TV",
	"Kitchen",
	"Refrigerator",
	"Washing Machine",
	"Dryer",
	"Dishwasher",
	"Microwave",
	"Parking",
	"Garage",
	"Balcony",
	"Terrace",
	"Garden",
	"Swimming Pool",
	"Gym/Fitness Center",
	"Security",
	"CCTV",
	"Generator",
	"Water Storage Tank",
	"Prepaid Meter",
	"Pet Friendly",
	"Elevator",
	"Wheelchair Accessible",
}

var RentAdvanceOptions = []string{
	"1 month", "2 months", "3 months", "6 months", "12 months",
}

// Listing validation bounds.
const (
	TitleMinLength       = 10
	TitleMaxLength       = 100
	DescriptionMinLength = 50
	DescriptionMaxLength = 2000
	PriceMin             = 50
	PriceMax             = 100000
	MaxListingImages     = 10
)
