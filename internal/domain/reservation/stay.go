package reservation

import "dreamstay/internal/pkg/dates"

// Stay is the archival record appended at check-out. Append-only, never
// mutated; timestamps are frozen as formatted strings.
type Stay struct {
	ConfirmationCode string
	Hotel            string
	RoomType         string
	Guests           []Guest
	CheckIn          *string
	CheckOut         string
	Total            float64
	PriceDetail      PriceDetail
	Offers           []string
}

// Stay builds the archival snapshot from a completed reservation.
func (r *Reservation) Stay() (Stay, error) {
	if r.status != StatusCompleted || r.checkOutReal == nil {
		return Stay{}, ErrNotCompleted
	}

	var checkIn *string
	if r.checkInReal != nil {
		formatted := r.checkInReal.Format(dates.TimestampLayout)
		checkIn = &formatted
	}

	return Stay{
		ConfirmationCode: r.confirmationCode,
		Hotel:            r.hotel,
		RoomType:         r.roomType,
		Guests:           r.guests,
		CheckIn:          checkIn,
		CheckOut:         r.checkOutReal.Format(dates.TimestampLayout),
		Total:            r.price.Total,
		PriceDetail:      r.price,
		Offers:           r.appliedOffers,
	}, nil
}
