package reservation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"dreamstay/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrMissingEmail     = errors.New("contact email is required")
	ErrInvalidEmail     = errors.New("contact email is malformed")
	ErrInvalidDates     = errors.New("check-out must be after check-in")
	ErrNoGuests         = errors.New("at least one guest is required")
	ErrNoAdultGuest     = errors.New("at least one adult guest is required")
	ErrCapacityExceeded = errors.New("party exceeds room capacity")
	ErrNotConfirmed     = errors.New("reservation is not confirmed")
	ErrNotOccupied      = errors.New("reservation is not occupied")
	ErrBeforeCheckIn    = errors.New("check-in date has not arrived yet")
	ErrNotCompleted     = errors.New("reservation is not completed")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether the address matches the accepted shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Reservation is the aggregate driven through the lifecycle
// confirmada -> ocupada -> completada. It is never deleted; completed
// reservations stay around for code+email lookups.
type Reservation struct {
	id               uuid.UUID
	confirmationCode string
	hotel            string
	roomType         string
	roomName         string
	contactEmail     string
	checkIn          time.Time
	checkOut         time.Time
	guests           []Guest
	counts           GuestCounts
	price            PriceDetail
	appliedOffers    []string
	status           Status
	checkInReal      *time.Time
	checkOutReal     *time.Time
	createdAt        time.Time
}

// NewReservation runs every creation invariant before any state exists:
// email shape, date order, party composition and room capacity. Pricing and
// availability are the caller's responsibility.
func NewReservation(
	code string,
	hotel catalog.Hotel,
	room catalog.RoomType,
	contactEmail string,
	checkIn, checkOut time.Time,
	guests []Guest,
	price PriceDetail,
	appliedOffers []string,
	now time.Time,
) (*Reservation, error) {
	contactEmail = strings.TrimSpace(contactEmail)
	if contactEmail == "" {
		return nil, ErrMissingEmail
	}
	if !ValidEmail(contactEmail) {
		return nil, ErrInvalidEmail
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}
	if len(guests) == 0 {
		return nil, ErrNoGuests
	}

	counts := CountGuests(guests)
	if counts.Adult == 0 {
		return nil, ErrNoAdultGuest
	}
	if !room.Capacity.Fits(counts.Adult, counts.Child, counts.Baby) {
		return nil, ErrCapacityExceeded
	}

	return &Reservation{
		id:               uuid.New(),
		confirmationCode: code,
		hotel:            hotel.Name,
		roomType:         room.Type,
		roomName:         room.Name,
		contactEmail:     contactEmail,
		checkIn:          checkIn,
		checkOut:         checkOut,
		guests:           guests,
		counts:           counts,
		price:            price,
		appliedOffers:    appliedOffers,
		status:           StatusConfirmed,
		createdAt:        now,
	}, nil
}

// CheckIn moves confirmada -> ocupada. It refuses to run before the reserved
// calendar day.
func (r *Reservation) CheckIn(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if beforeCalendarDay(now, r.checkIn) {
		return ErrBeforeCheckIn
	}
	r.status = StatusOccupied
	r.checkInReal = &now
	return nil
}

// CheckOut moves ocupada -> completada.
func (r *Reservation) CheckOut(now time.Time) error {
	if r.status != StatusOccupied {
		return ErrNotOccupied
	}
	r.status = StatusCompleted
	r.checkOutReal = &now
	return nil
}

// MatchesEmail compares the contact email case-insensitively.
func (r *Reservation) MatchesEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), r.contactEmail)
}

func beforeCalendarDay(now, day time.Time) bool {
	ny, nm, nd := now.Date()
	dy, dm, dd := day.Date()
	if ny != dy {
		return ny < dy
	}
	if nm != dm {
		return nm < dm
	}
	return nd < dd
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) ConfirmationCode() string { return r.confirmationCode }
func (r *Reservation) Hotel() string            { return r.hotel }
func (r *Reservation) RoomType() string         { return r.roomType }
func (r *Reservation) RoomName() string         { return r.roomName }
func (r *Reservation) ContactEmail() string     { return r.contactEmail }
func (r *Reservation) CheckInDate() time.Time   { return r.checkIn }
func (r *Reservation) CheckOutDate() time.Time  { return r.checkOut }
func (r *Reservation) Guests() []Guest          { return r.guests }
func (r *Reservation) Counts() GuestCounts      { return r.counts }
func (r *Reservation) Price() PriceDetail       { return r.price }
func (r *Reservation) AppliedOffers() []string  { return r.appliedOffers }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) CheckInReal() *time.Time  { return r.checkInReal }
func (r *Reservation) CheckOutReal() *time.Time { return r.checkOutReal }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }

// Snapshot is the exported mirror of the aggregate used by the store and the
// read side. Mutations only happen through the entity.
type Snapshot struct {
	ID               uuid.UUID
	ConfirmationCode string
	Hotel            string
	RoomType         string
	RoomName         string
	ContactEmail     string
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           []Guest
	Counts           GuestCounts
	Price            PriceDetail
	AppliedOffers    []string
	Status           Status
	CheckInReal      *time.Time
	CheckOutReal     *time.Time
	CreatedAt        time.Time
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:               r.id,
		ConfirmationCode: r.confirmationCode,
		Hotel:            r.hotel,
		RoomType:         r.roomType,
		RoomName:         r.roomName,
		ContactEmail:     r.contactEmail,
		CheckIn:          r.checkIn,
		CheckOut:         r.checkOut,
		Guests:           r.guests,
		Counts:           r.counts,
		Price:            r.price,
		AppliedOffers:    r.appliedOffers,
		Status:           r.status,
		CheckInReal:      r.checkInReal,
		CheckOutReal:     r.checkOutReal,
		CreatedAt:        r.createdAt,
	}
}

// Reconstruct rebuilds the aggregate from a stored snapshot, bypassing
// creation validation.
func Reconstruct(s Snapshot) *Reservation {
	return &Reservation{
		id:               s.ID,
		confirmationCode: s.ConfirmationCode,
		hotel:            s.Hotel,
		roomType:         s.RoomType,
		roomName:         s.RoomName,
		contactEmail:     s.ContactEmail,
		checkIn:          s.CheckIn,
		checkOut:         s.CheckOut,
		guests:           s.Guests,
		counts:           s.Counts,
		price:            s.Price,
		appliedOffers:    s.AppliedOffers,
		status:           s.Status,
		checkInReal:      s.CheckInReal,
		checkOutReal:     s.CheckOutReal,
		createdAt:        s.CreatedAt,
	}
}
