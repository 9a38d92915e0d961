package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1718000000123)
	id := NewID(PrefixContactInquiry, now)
	assert.Regexp(t, regexp.MustCompile(`^inquiry_1718000000123_[0-9a-z]{9}$`), id)
	assert.NotEqual(t, id, NewID(PrefixContactInquiry, now))
}

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"₦85,000,000", 85000000},
		{"₦3,500,000/yr", 3500000},
		{"₦1,000,000", 1000000},
		{"Price on request", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDisplayPrice(tt.in))
		})
	}
}

func TestNormalizePropertyType(t *testing.T) {
	got, ok := NormalizePropertyType("sale")
	assert.True(t, ok)
	assert.Equal(t, PropertyTypeSale, got)

	got, ok = NormalizePropertyType(" AIRBNB ")
	assert.True(t, ok)
	assert.Equal(t, PropertyTypeAirbnb, got)

	_, ok = NormalizePropertyType("castle")
	assert.False(t, ok)
}

func TestMailingListMatches(t *testing.T) {
	profile := &Profile{Interests: Interests{
		PropertyTypes: []string{"Rent", "Airbnb"},
		ServiceTypes:  []string{"Property Management"},
	}}

	tests := []struct {
		name string
		list MailingList
		want bool
	}{
		{"property overlap", MailingList{Category: MailingCategoryProperty, Interests: []string{"rent"}}, true},
		{"property no overlap", MailingList{Category: MailingCategoryProperty, Interests: []string{"Sale"}}, false},
		{"service overlap", MailingList{Category: MailingCategoryService, Interests: []string{"Property Management"}}, true},
		{"category mismatch", MailingList{Category: MailingCategoryService, Interests: []string{"Rent"}}, false},
		{"empty interests", MailingList{Category: MailingCategoryProperty}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.Matches(profile))
		})
	}
}

func TestIsBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "confirmed", "declined"} {
		assert.True(t, IsBookingStatus(s), s)
	}
	assert.False(t, IsBookingStatus("cancelled"))
	assert.False(t, IsBookingStatus(""))
}
