package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salonapi/models"
)

func TestRender(t *testing.T) {
	client := &models.User{ID: primitive.NewObjectID(), FirstName: "Lucía", LastName: "Paredes", Email: "lucia@example.com"}
	stylist := &models.User{ID: primitive.NewObjectID(), FirstName: "Ana", LastName: "Mora", Email: "ana@example.com"}

	out, err := Render(Data{
		InvoiceNumber: "FCT-20240610-A1B2C3",
		Method:        models.PaymentMethodTransfer,
		IssuedAt:      time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		Amount:        25,
		BookingID:     "64b0f00dd1e2aa34569fa1c2",
		StartsAt:      time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		Client:        client,
		Stylist:       stylist,
		ServiceName:   "Corte de cabello",
		DurationMin:   60,
		Price:         25,
	})

	require.NoError(t, err)
	require.NotEmpty(t, out)
	// %PDF magic header.
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_MissingClientFallsBack(t *testing.T) {
	out, err := Render(Data{
		InvoiceNumber: "FCT-20240610-A1B2C3",
		Method:        models.PaymentMethodCard,
		IssuedAt:      time.Now(),
		Amount:        40,
		BookingID:     "64b0f00dd1e2aa34569fa1c2",
		StartsAt:      time.Now(),
		ServiceName:   "Tinte",
		DurationMin:   90,
		Price:         40,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
