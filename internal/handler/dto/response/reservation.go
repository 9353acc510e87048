package response

import (
	"strings"
	"time"

	"dreamstay/internal/domain/reservation"
	"dreamstay/internal/pkg/dates"
)

type GuestResponse struct {
	Name     string `json:"name"`
	Birth    string `json:"birth"`
	Age      int    `json:"age"`
	Category string `json:"category"`
}

type ReservationResponse struct {
	ConfirmationCode string                  `json:"confirmation_code"`
	Hotel            string                  `json:"hotel"`
	RoomType         string                  `json:"room_type"`
	RoomName         string                  `json:"room_name"`
	ContactEmail     string                  `json:"contact_email"`
	CheckIn          string                  `json:"checkin"`
	CheckOut         string                  `json:"checkout"`
	Guests           []GuestResponse         `json:"guests"`
	PriceDetail      reservation.PriceDetail `json:"price_detail"`
	Total            float64                 `json:"total"`
	Offer            *string                 `json:"offer"`
	Offers           []string                `json:"offers"`
	Counts           reservation.GuestCounts `json:"counts"`
	Nights           int                     `json:"nights"`
	Status           string                  `json:"status"`
	CheckInReal      *string                 `json:"checkin_real,omitempty"`
	CheckOutReal     *string                 `json:"checkout_real,omitempty"`
}

func FromSnapshot(s *reservation.Snapshot) *ReservationResponse {
	return &ReservationResponse{
		ConfirmationCode: s.ConfirmationCode,
		Hotel:            s.Hotel,
		RoomType:         s.RoomType,
		RoomName:         s.RoomName,
		ContactEmail:     s.ContactEmail,
		CheckIn:          dates.Format(s.CheckIn),
		CheckOut:         dates.Format(s.CheckOut),
		Guests:           guestResponses(s.Guests),
		PriceDetail:      s.Price,
		Total:            s.Price.Total,
		Offer:            joinOffers(s.AppliedOffers),
		Offers:           append([]string{}, s.AppliedOffers...),
		Counts:           s.Counts,
		Nights:           s.Price.Nights,
		Status:           s.Status.String(),
		CheckInReal:      formatTimestamp(s.CheckInReal),
		CheckOutReal:     formatTimestamp(s.CheckOutReal),
	}
}

func guestResponses(guests []reservation.Guest) []GuestResponse {
	out := make([]GuestResponse, len(guests))
	for i, g := range guests {
		out[i] = GuestResponse{
			Name:     g.Name,
			Birth:    dates.Format(g.Birth),
			Age:      g.Age,
			Category: string(g.Category),
		}
	}
	return out
}

func joinOffers(offers []string) *string {
	if len(offers) == 0 {
		return nil
	}
	joined := strings.Join(offers, ", ")
	return &joined
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dates.TimestampLayout)
	return &formatted
}
