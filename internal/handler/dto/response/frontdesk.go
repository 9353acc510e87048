package response

import (
	"dreamstay/internal/domain/reservation"
	"dreamstay/internal/pkg/dates"
)

type CheckInResponse struct {
	Message  string `json:"message"`
	Hotel    string `json:"hotel"`
	RoomType string `json:"room_type"`
	CheckIn  string `json:"checkin"`
}

func FromCheckIn(s *reservation.Snapshot) *CheckInResponse {
	resp := &CheckInResponse{
		Message:  "Check-in realizado",
		Hotel:    s.Hotel,
		RoomType: s.RoomType,
	}
	if s.CheckInReal != nil {
		resp.CheckIn = s.CheckInReal.Format(dates.TimestampLayout)
	}
	return resp
}

type CheckOutResponse struct {
	Message  string `json:"message"`
	Hotel    string `json:"hotel"`
	RoomType string `json:"room_type"`
	CheckOut string `json:"checkout"`
}

func FromCheckOut(s *reservation.Snapshot) *CheckOutResponse {
	resp := &CheckOutResponse{
		Message:  "Check-out realizado",
		Hotel:    s.Hotel,
		RoomType: s.RoomType,
	}
	if s.CheckOutReal != nil {
		resp.CheckOut = s.CheckOutReal.Format(dates.TimestampLayout)
	}
	return resp
}

type StayResponse struct {
	ConfirmationCode string                  `json:"confirmation_code"`
	Hotel            string                  `json:"hotel"`
	RoomType         string                  `json:"room_type"`
	Guests           []GuestResponse         `json:"guests"`
	CheckIn          *string                 `json:"checkin"`
	CheckOut         string                  `json:"checkout"`
	Total            float64                 `json:"total"`
	PriceDetail      reservation.PriceDetail `json:"price_detail"`
	Offers           []string                `json:"offers"`
}

func FromStay(stay reservation.Stay) *StayResponse {
	return &StayResponse{
		ConfirmationCode: stay.ConfirmationCode,
		Hotel:            stay.Hotel,
		RoomType:         stay.RoomType,
		Guests:           guestResponses(stay.Guests),
		CheckIn:          stay.CheckIn,
		CheckOut:         stay.CheckOut,
		Total:            stay.Total,
		PriceDetail:      stay.PriceDetail,
		Offers:           append([]string{}, stay.Offers...),
	}
}
