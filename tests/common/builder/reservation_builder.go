// Package builder provides fluent request builders for tests. Defaults are
// always valid; tests mutate only the field under test.
package builder

import (
	reqdto "dreamstay/internal/handler/dto/request"
)

// ReservationRequestBuilder builds a CreateReservationRequest for the seed
// catalog: Hotel Central, Doble, two nights inside the low-season offer
// window, one adult and one child.
type ReservationRequestBuilder struct {
	req reqdto.CreateReservationRequest
}

func NewReservationRequestBuilder() *ReservationRequestBuilder {
	return &ReservationRequestBuilder{
		req: reqdto.CreateReservationRequest{
			Hotel:        "Hotel Central",
			RoomType:     "Doble",
			CheckIn:      "10/07/2025",
			CheckOut:     "12/07/2025",
			ContactEmail: "juan.perez@example.com",
			Guests: []reqdto.GuestInput{
				{Name: "Juan Perez", Birth: "01/01/1990"},
				{Name: "Lucia Perez", Birth: "15/06/2015"},
			},
		},
	}
}

func (b *ReservationRequestBuilder) WithHotel(hotel string) *ReservationRequestBuilder {
	b.req.Hotel = hotel
	return b
}

func (b *ReservationRequestBuilder) WithRoomType(roomType string) *ReservationRequestBuilder {
	b.req.RoomType = roomType
	return b
}

func (b *ReservationRequestBuilder) WithDates(checkIn, checkOut string) *ReservationRequestBuilder {
	b.req.CheckIn = checkIn
	b.req.CheckOut = checkOut
	return b
}

func (b *ReservationRequestBuilder) WithEmail(email string) *ReservationRequestBuilder {
	b.req.ContactEmail = email
	return b
}

func (b *ReservationRequestBuilder) WithGuests(guests ...reqdto.GuestInput) *ReservationRequestBuilder {
	b.req.Guests = guests
	return b
}

func (b *ReservationRequestBuilder) WithNoGuests() *ReservationRequestBuilder {
	b.req.Guests = nil
	return b
}

func (b *ReservationRequestBuilder) Build() reqdto.CreateReservationRequest {
	return b.req
}
