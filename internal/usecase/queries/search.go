package queries

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"dreamstay/internal/domain/catalog"
	"dreamstay/internal/domain/reservation"
	reqdto "dreamstay/internal/handler/dto/request"
	"dreamstay/internal/pkg/clock"
	"dreamstay/internal/pkg/dates"
	"dreamstay/internal/pkg/ptr"
	"dreamstay/internal/usecase/shared"
)

// Letters (including Latin-1 accented ones), digits and spaces.
var cityRegex = regexp.MustCompile(`^[0-9A-Za-zÀ-ÿ ]+$`)

// RoomResult is one available room in a search response.
type RoomResult struct {
	Name              string                  `json:"name"`
	Type              string                  `json:"type"`
	Capacity          string                  `json:"capacity"`
	CapacityBreakdown catalog.Capacity        `json:"capacity_breakdown"`
	State             string                  `json:"state"`
	PricePerNight     float64                 `json:"price_per_night"`
	Price             float64                 `json:"price"`
	Offer             *string                 `json:"offer"`
	PriceDetail       reservation.PriceDetail `json:"price_detail"`
}

// HotelResult groups the available rooms of one hotel, cheapest first.
type HotelResult struct {
	Hotel  string       `json:"hotel"`
	City   string       `json:"city"`
	Offers []string     `json:"offers"`
	Rooms  []RoomResult `json:"rooms"`
	Nights int          `json:"nights"`
}

// SearchQueries composes catalog, availability and pricing into the
// "which rooms, at what price" answer.
type SearchQueries interface {
	SearchHotels(ctx context.Context, req reqdto.SearchHotelsRequest) ([]HotelResult, error)
}

type searchQueriesImpl struct {
	catalog      *catalog.Catalog
	availability shared.AvailabilityChecker
	priceCalc    reservation.PriceCalculator
	clock        clock.Clock
}

func NewSearchQueries(
	cat *catalog.Catalog,
	availability shared.AvailabilityChecker,
	priceCalc reservation.PriceCalculator,
	clk clock.Clock,
) SearchQueries {
	return &searchQueriesImpl{
		catalog:      cat,
		availability: availability,
		priceCalc:    priceCalc,
		clock:        clk,
	}
}

// SearchHotels accumulates every validation failure into a single error so
// the caller sees the complete list, then scans the catalog for rooms that
// fit the party, are free for the dates and prices them with the active
// offers. An empty result is a valid answer, not an error.
func (q *searchQueriesImpl) SearchHotels(
	ctx context.Context,
	req reqdto.SearchHotelsRequest,
) ([]HotelResult, error) {
	var messages []string

	city := strings.TrimSpace(req.City)
	switch {
	case city == "":
		messages = append(messages, "La ciudad es obligatoria.")
	case !cityRegex.MatchString(city):
		messages = append(messages, "La ciudad solo admite letras, números y espacios.")
	}

	today := dates.Today(q.clock.Now(), ptr.Deref(req.TzOffset, 0))

	checkIn, okIn := dates.Parse(req.CheckIn)
	if !okIn {
		messages = append(messages, "La fecha de entrada es obligatoria y debe tener formato dd/mm/yyyy.")
	} else if checkIn.Before(today) {
		messages = append(messages, "La fecha de entrada no puede ser menor a la actual.")
	}

	checkOut, okOut := dates.Parse(req.CheckOut)
	if !okOut {
		messages = append(messages, "La fecha de salida es obligatoria y debe tener formato dd/mm/yyyy.")
	} else if okIn && !checkOut.After(checkIn) {
		messages = append(messages, "La fecha de salida debe ser posterior a la de entrada.")
	}

	roomType := req.RoomType
	if roomType == "" {
		roomType = "Single"
	}
	knownType := roomType == catalog.RoomTypeAny || q.catalog.HasRoomType(roomType)
	if !knownType {
		messages = append(messages, "Tipo de habitación inválido.")
	}

	adults := ptr.Deref(req.Adults, 1)
	children := ptr.Deref(req.Children, 0)
	babies := ptr.Deref(req.Babies, 0)
	if req.CountsInvalid {
		messages = append(messages, "La cantidad de huéspedes debe ser un número entero positivo.")
		adults, children, babies = 1, 0, 0
	}

	if adults < 1 {
		messages = append(messages, "Debe haber al menos un adulto en la reserva.")
	}
	if children < 0 || babies < 0 {
		messages = append(messages, "No se permiten valores negativos en niños o bebés.")
	}

	// A specific room type that cannot hold the party is a validation
	// failure, never a silent empty result.
	if roomType != catalog.RoomTypeAny && knownType {
		if room, ok := q.catalog.FirstRoomOfType(roomType); ok &&
			!room.Capacity.Fits(adults, children, babies) {
			messages = append(messages, "La habitación seleccionada no admite la cantidad de huéspedes indicada.")
		}
	}

	if len(messages) > 0 {
		return nil, shared.NewValidationError(messages...)
	}

	counts := reservation.GuestCounts{Adult: adults, Child: children, Baby: babies}
	nights := dates.Nights(checkIn, checkOut)

	results := make([]HotelResult, 0)
	for _, hotel := range q.catalog.HotelsInCity(city) {
		activeOffers := hotel.ActiveOffers(checkIn, checkOut)
		offerLabels := make([]string, 0, len(activeOffers))
		for _, offer := range activeOffers {
			offerLabels = append(offerLabels, offer.Label())
		}

		rooms := make([]RoomResult, 0, len(hotel.Rooms))
		for _, room := range hotel.Rooms {
			if roomType != catalog.RoomTypeAny && room.Type != roomType {
				continue
			}
			if !room.Capacity.Fits(adults, children, babies) {
				continue
			}
			if !q.availability.IsAvailable(ctx, hotel.Name, room.Type, checkIn, checkOut) {
				continue
			}

			detail, applied := q.priceCalc.Quote(room, counts, nights, activeOffers)

			var offer *string
			if len(applied) > 0 {
				offer = ptr.To(strings.Join(applied, ", "))
			}

			rooms = append(rooms, RoomResult{
				Name:              room.Name,
				Type:              room.Type,
				Capacity:          room.Capacity.Label(),
				CapacityBreakdown: room.Capacity,
				State:             string(reservation.RoomAvailable),
				PricePerNight:     detail.SubtotalPerNight,
				Price:             detail.Total,
				Offer:             offer,
				PriceDetail:       detail,
			})
		}

		if len(rooms) == 0 {
			continue
		}
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].PricePerNight < rooms[j].PricePerNight
		})
		results = append(results, HotelResult{
			Hotel:  hotel.Name,
			City:   hotel.City,
			Offers: offerLabels,
			Rooms:  rooms,
			Nights: nights,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rooms[0].PricePerNight < results[j].Rooms[0].PricePerNight
	})
	return results, nil
}
