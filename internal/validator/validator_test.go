package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string   `json:"title" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Type     string   `json:"type" validate:"required,is-property-type"`
	Age      *int     `json:"age" validate:"required,adult"`
	Status   *string  `json:"status" validate:"omitempty,is-booking-status"`
	Tags     []string `json:"tags" validate:"omitempty,min=1"`
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestValidate_RequiredSummary(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Type: "Sale", Age: intPtr(30)})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Required fields: location, title", vErr.Summary())
	assert.Contains(t, vErr.Errors, "title")
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()
	base := func() sample {
		return sample{Title: "t", Location: "l", Type: "sale", Age: intPtr(18)}
	}

	ok := base()
	assert.NoError(t, v.Validate(&ok))

	tests := []struct {
		name  string
		mod   func(s *sample)
		field string
	}{
		{"minor", func(s *sample) { s.Age = intPtr(17) }, "age"},
		{"missing age", func(s *sample) { s.Age = nil }, "age"},
		{"bad type", func(s *sample) { s.Type = "Castle" }, "type"},
		{"bad status", func(s *sample) { s.Status = strPtr("archived") }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mod(&s)
			err := v.Validate(&s)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}

	s := base()
	s.Status = strPtr("confirmed")
	assert.NoError(t, v.Validate(&s))
}

func TestValidate_AdultMessage(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Title: "t", Location: "l", Type: "Rent", Age: intPtr(12)})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "age: You must be at least 18 years old", vErr.Summary())
}
