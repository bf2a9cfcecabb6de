package utils

import (
	"errors"
	"testing"

	"github.com/houranii/tyreshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRules(t *testing.T) {
	tests := []struct {
		name   string
		card   models.CardDetails
		failed []string
	}{
		{"valid with spaces", models.CardDetails{Name: "J", Number: "4242 4242 4242 4242", Expiry: "01/30", CVV: "123"}, nil},
		{"valid amex style cvv", models.CardDetails{Name: "J", Number: "4242424242424242", Expiry: "12/28", CVV: "1234"}, nil},
		{"15 digits", models.CardDetails{Name: "J", Number: "424242424242424", Expiry: "12/28", CVV: "123"}, []string{"number"}},
		{"letters in number", models.CardDetails{Name: "J", Number: "4242 4242 4242 424x", Expiry: "12/28", CVV: "123"}, []string{"number"}},
		{"expiry without slash", models.CardDetails{Name: "J", Number: "4242424242424242", Expiry: "1228", CVV: "123"}, []string{"expiry"}},
		{"long cvv", models.CardDetails{Name: "J", Number: "4242424242424242", Expiry: "12/28", CVV: "12345"}, []string{"cvv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Struct(tt.card)
			if tt.failed == nil {
				assert.NoError(t, err)
				return
			}
			fields := FieldErrors(err)
			assert.Len(t, fields, len(tt.failed))
			for _, f := range tt.failed {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestFieldErrors_NestedKeysAndMessages(t *testing.T) {
	tyre := models.Tyre{
		ID:           "x",
		Brand:        "B",
		Model:        "M",
		VehicleTypes: []models.VehicleType{"Bike"},
		AvgRating:    6,
	}
	fields := FieldErrors(Validate.Struct(tyre))

	assert.Equal(t, "Must be one of: Car SUV Truck", fields["vehicle_types[0]"])
	assert.Equal(t, "Must be less than or equal to 5", fields["avg_rating"])
	assert.Equal(t, "Must be greater than 0", fields["size.width"])
}

func TestFieldErrors_ForeignError(t *testing.T) {
	fields := FieldErrors(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"_": "unexpected EOF"}, fields)
}

func TestServiceTypeRule(t *testing.T) {
	loc := models.Location{ID: "loc1", Name: "Burnside", ServiceType: "Delivery"}
	err := Validate.Struct(loc)
	require.Error(t, err)
	assert.Equal(t, "Must be Professional Fitting or Self-Pickup", FieldErrors(err)["service_type"])
}

func TestNormalizeCardNumber(t *testing.T) {
	assert.Equal(t, "4242424242424242", NormalizeCardNumber("4242 4242 4242 4242"))
}

func TestNotBlankRule(t *testing.T) {
	type form struct {
		Brand *string `json:"brand" validate:"omitempty,notblank"`
		Model string  `json:"model" validate:"required,notblank"`
	}
	blank, named := "   ", "Michelin"

	assert.NoError(t, Validate.Struct(form{Model: "Pilot Sport 4"}))
	assert.NoError(t, Validate.Struct(form{Brand: &named, Model: "Pilot Sport 4"}))

	fields := FieldErrors(Validate.Struct(form{Brand: &blank, Model: " \t"}))
	assert.Equal(t, map[string]string{"brand": "Must not be blank", "model": "Must not be blank"}, fields)
}
