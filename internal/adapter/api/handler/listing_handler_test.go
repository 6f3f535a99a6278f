package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Promisekel/rent-easy-gh/internal/domain/search"
)

func contextWithQuery(params url.Values) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/listings?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFilterSetFromQuery(t *testing.T) {
	c := contextWithQuery(url.Values{
		"q":             {"east legon"},
		"region":        {"Greater Accra"},
		"city":          {"Accra"},
		"property_type": {"Apartment"},
		"min_price":     {"500"},
		"max_price":     {"3000"},
		"bedrooms":      {"2"},
		"furnished":     {"Furnished"},
		"has_internet":  {"true"},
		"has_parking":   {"true"},
	})

	f := filterSetFromQuery(c)

	assert.Equal(t, search.FilterSet{
		Query:        "east legon",
		Region:       "Greater Accra",
		City:         "Accra",
		PropertyType: "Apartment",
		MinPrice:     500,
		MaxPrice:     3000,
		Bedrooms:     "2",
		Furnished:    "Furnished",
		HasInternet:  true,
		HasParking:   true,
	}, f)
}

func TestFilterSetFromQueryDropsGarbageNumbers(t *testing.T) {
	c := contextWithQuery(url.Values{
		"min_price":    {"cheap"},
		"max_price":    {"-50"},
		"has_internet": {"notabool"},
	})

	f := filterSetFromQuery(c)

	assert.Zero(t, f.MinPrice)
	assert.Zero(t, f.MaxPrice)
	assert.False(t, f.HasInternet)
}

func TestFilterSetFromQueryKeepsSixPlusBucket(t *testing.T) {
	c := contextWithQuery(url.Values{
		"bedrooms": {"6+"},
	})

	// The bucket is passed through literally; the matcher decides what
	// it means.
	f := filterSetFromQuery(c)
	assert.Equal(t, "6+", f.Bedrooms)
}

func TestFilterSetFromQueryEmpty(t *testing.T) {
	c := contextWithQuery(url.Values{})
	assert.Equal(t, search.FilterSet{}, filterSetFromQuery(c))
}
