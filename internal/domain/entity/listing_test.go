package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatus(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{ListingStatusPending, ListingStatusActive, true},
		{ListingStatusPending, ListingStatusRejected, true},
		{ListingStatusPending, ListingStatusInactive, false},
		{ListingStatusActive, ListingStatusInactive, true},
		{ListingStatusActive, ListingStatusRejected, false},
		{ListingStatusInactive, ListingStatusActive, true},
		{ListingStatusInactive, ListingStatusRejected, false},
		{ListingStatusRejected, ListingStatusActive, false},
		{ListingStatusRejected, ListingStatusPending, false},
		{"unknown", ListingStatusActive, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionStatus(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestFavoriteID(t *testing.T) {
	assert.Equal(t, "user1_listing1", FavoriteID("user1", "listing1"))
}

func TestValidSignupRole(t *testing.T) {
	assert.True(t, ValidSignupRole(RoleRenter))
	assert.True(t, ValidSignupRole(RoleLandlord))
	assert.False(t, ValidSignupRole(RoleAdmin))
	assert.False(t, ValidSignupRole(Role("superuser")))
}

func TestIsGhanaRegion(t *testing.T) {
	assert.True(t, IsGhanaRegion("Greater Accra"))
	assert.True(t, IsGhanaRegion("Ashanti"))
	assert.False(t, IsGhanaRegion("Lagos"))
	assert.False(t, IsGhanaRegion(""))
}
