package queries

import (
	"context"
	"strings"

	"dreamstay/internal/domain/catalog"
	"dreamstay/internal/domain/reservation"
	reqdto "dreamstay/internal/handler/dto/request"
	"dreamstay/internal/pkg/dates"
	"dreamstay/internal/pkg/errs"
	"dreamstay/internal/pkg/ptr"
	"dreamstay/internal/usecase/shared"
)

var ErrUnknownHotelOrRoom = errs.New("unknown hotel or room type")

// PriceQuote is the preview payload: the breakdown plus the joined labels of
// the offers that reduced a rate.
type PriceQuote struct {
	PriceDetail reservation.PriceDetail `json:"price_detail"`
	Offer       *string                 `json:"offer"`
}

// PricingQueries prices a hypothetical stay without creating anything.
type PricingQueries interface {
	Preview(ctx context.Context, req reqdto.PricePreviewRequest) (*PriceQuote, error)
}

type pricingQueriesImpl struct {
	catalog   *catalog.Catalog
	priceCalc reservation.PriceCalculator
}

func NewPricingQueries(cat *catalog.Catalog, priceCalc reservation.PriceCalculator) PricingQueries {
	return &pricingQueriesImpl{catalog: cat, priceCalc: priceCalc}
}

func (q *pricingQueriesImpl) Preview(
	_ context.Context,
	req reqdto.PricePreviewRequest,
) (*PriceQuote, error) {
	hotelName := strings.TrimSpace(req.Hotel)
	if hotelName == "" || req.RoomType == "" {
		return nil, shared.NewValidationError("Hotel y tipo de habitación son obligatorios")
	}

	hotel, room, ok := q.catalog.FindRoom(hotelName, req.RoomType)
	if !ok {
		return nil, ErrUnknownHotelOrRoom
	}

	checkIn, okIn := dates.Parse(req.CheckIn)
	checkOut, okOut := dates.Parse(req.CheckOut)
	if !okIn || !okOut || !checkOut.After(checkIn) {
		return nil, shared.NewValidationError("Fechas inválidas")
	}

	if req.Counts.Adult < 1 {
		return nil, shared.NewValidationError("Debe haber al menos un adulto en la reserva")
	}
	if req.Counts.Child < 0 || req.Counts.Baby < 0 {
		return nil, shared.NewValidationError("Los conteos no pueden ser negativos")
	}
	if !room.Capacity.Fits(req.Counts.Adult, req.Counts.Child, req.Counts.Baby) {
		return nil, shared.NewValidationError("La cantidad de huéspedes excede la capacidad de la habitación seleccionada")
	}

	counts := reservation.GuestCounts{
		Adult: req.Counts.Adult,
		Child: req.Counts.Child,
		Baby:  req.Counts.Baby,
	}
	nights := dates.Nights(checkIn, checkOut)
	detail, applied := q.priceCalc.Quote(room, counts, nights, hotel.ActiveOffers(checkIn, checkOut))

	var offer *string
	if len(applied) > 0 {
		offer = ptr.To(strings.Join(applied, ", "))
	}
	return &PriceQuote{PriceDetail: detail, Offer: offer}, nil
}
