//go:build unit

package queries_test

import (
	"context"
	"testing"

	"dreamstay/internal/domain/catalog"
	"dreamstay/internal/domain/reservation"
	reqdto "dreamstay/internal/handler/dto/request"
	"dreamstay/internal/usecase/queries"
	"dreamstay/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingQueries(t *testing.T) queries.PricingQueries {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return queries.NewPricingQueries(cat, reservation.NewStandardPriceCalculator())
}

func validPreviewRequest() reqdto.PricePreviewRequest {
	return reqdto.PricePreviewRequest{
		Hotel:    "Hotel Central",
		RoomType: "Doble",
		CheckIn:  "10/07/2025",
		CheckOut: "12/07/2025",
		Counts:   reqdto.CountsInput{Adult: 2, Child: 1},
	}
}

func TestPreview(t *testing.T) {
	q := newPricingQueries(t)

	quote, err := q.Preview(context.Background(), validPreviewRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, quote.PriceDetail.Nights)
	assert.Equal(t, reservation.GuestCounts{Adult: 2, Child: 1}, quote.PriceDetail.Counts)
	assert.Equal(t, 0.0, quote.PriceDetail.PerNight.Child)
	assert.Equal(t, 300.0, quote.PriceDetail.SubtotalPerNight)
	assert.Equal(t, 600.0, quote.PriceDetail.Total)
	require.NotNil(t, quote.Offer)
	assert.Equal(t, "Niños gratis en temporada baja", *quote.Offer)
}

func TestPreviewOutsideOfferWindow(t *testing.T) {
	q := newPricingQueries(t)
	req := validPreviewRequest()
	req.CheckIn = "10/10/2025"
	req.CheckOut = "12/10/2025"

	quote, err := q.Preview(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 75.0, quote.PriceDetail.PerNight.Child)
	assert.Equal(t, 375.0, quote.PriceDetail.SubtotalPerNight)
	assert.Nil(t, quote.Offer)
}

func TestPreviewUnknownHotelOrRoom(t *testing.T) {
	q := newPricingQueries(t)

	req := validPreviewRequest()
	req.Hotel = "Hotel Fantasma"
	_, err := q.Preview(context.Background(), req)
	assert.ErrorIs(t, err, queries.ErrUnknownHotelOrRoom)

	req = validPreviewRequest()
	req.RoomType = "Penthouse"
	_, err = q.Preview(context.Background(), req)
	assert.ErrorIs(t, err, queries.ErrUnknownHotelOrRoom)
}

func TestPreviewValidation(t *testing.T) {
	q := newPricingQueries(t)

	cases := []struct {
		name    string
		mutate  func(*reqdto.PricePreviewRequest)
		message string
	}{
		{
			name:    "missing hotel",
			mutate:  func(r *reqdto.PricePreviewRequest) { r.Hotel = " " },
			message: "Hotel y tipo de habitación son obligatorios",
		},
		{
			name:    "missing room type",
			mutate:  func(r *reqdto.PricePreviewRequest) { r.RoomType = "" },
			message: "Hotel y tipo de habitación son obligatorios",
		},
		{
			name:    "malformed dates",
			mutate:  func(r *reqdto.PricePreviewRequest) { r.CheckIn = "pronto" },
			message: "Fechas inválidas",
		},
		{
			name: "checkout before checkin",
			mutate: func(r *reqdto.PricePreviewRequest) {
				r.CheckIn = "12/07/2025"
				r.CheckOut = "10/07/2025"
			},
			message: "Fechas inválidas",
		},
		{
			name:    "no adult",
			mutate:  func(r *reqdto.PricePreviewRequest) { r.Counts.Adult = 0 },
			message: "Debe haber al menos un adulto en la reserva",
		},
		{
			name:    "negative counts",
			mutate:  func(r *reqdto.PricePreviewRequest) { r.Counts.Child = -1 },
			message: "Los conteos no pueden ser negativos",
		},
		{
			name:    "over capacity",
			mutate:  func(r *reqdto.PricePreviewRequest) { r.Counts.Adult = 3 },
			message: "La cantidad de huéspedes excede la capacidad de la habitación seleccionada",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPreviewRequest()
			tc.mutate(&req)

			_, err := q.Preview(context.Background(), req)

			ve, ok := shared.AsValidation(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, []string{tc.message}, ve.Messages)
		})
	}
}
