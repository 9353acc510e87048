package shared

import (
	"context"
	"time"

	"dreamstay/internal/domain/reservation"
)

// UnitOfWork serializes mutating access to the store. Within holds the
// store's write lock for the whole closure, so a check-then-act sequence
// (availability check, capacity validation, insert) runs as one atomic unit.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the view of the store handed to a closure running under the write
// lock. Its repositories must not be retained past the closure.
type Tx interface {
	Reservations() ReservationRepository
	Occupancy() OccupancyRepository
	Stays() StayRepository

	// RoomAvailable applies the availability rule without re-locking:
	// manual override wins, then blocking reservations are scanned for
	// date overlap.
	RoomAvailable(hotel, roomType string, start, end time.Time) bool
}

type ReservationRepository interface {
	Insert(ctx context.Context, snap reservation.Snapshot) error
	ByCode(ctx context.Context, code string) (*reservation.Snapshot, error)
	Update(ctx context.Context, snap reservation.Snapshot) error
	CodeExists(ctx context.Context, code string) bool
}

type OccupancyRepository interface {
	State(ctx context.Context, hotel, roomType string) reservation.RoomState
	Set(ctx context.Context, hotel, roomType string, state reservation.RoomState)
}

type StayRepository interface {
	Append(ctx context.Context, stay reservation.Stay)
}

// AvailabilityChecker is the read-only availability port used by searches.
// It is deliberately pluggable: the current implementation is a linear scan,
// an indexed per-room calendar can replace it without changing callers.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, hotel, roomType string, start, end time.Time) bool
}
