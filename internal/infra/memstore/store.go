// Package memstore is the single in-process store for reservations, manual
// occupancy overrides and the stay archive. It owns the locking discipline:
// every mutating usecase runs inside Within under the write lock, read
// queries take the read lock and only ever see deep copies.
package memstore

import (
	"context"
	"sync"
	"time"

	"dreamstay/internal/domain/reservation"
	"dreamstay/internal/infra"
	"dreamstay/internal/pkg/dates"
	"dreamstay/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type occupancyKey struct {
	hotel    string
	roomType string
}

type Store struct {
	mu           sync.RWMutex
	reservations []reservation.Snapshot
	byCode       map[string]int
	occupancy    map[occupancyKey]reservation.RoomState
	stays        []reservation.Stay
}

func New() *Store {
	return &Store{
		byCode:    make(map[string]int),
		occupancy: make(map[occupancyKey]reservation.RoomState),
	}
}

// Within runs fn under the write lock, making the whole closure one atomic
// unit of work. The in-memory store has no rollback: callers must do all
// checks before the first mutation, which the command layer does.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &storeTx{s: s})
}

// IsAvailable implements the read-only availability port for searches.
func (s *Store) IsAvailable(_ context.Context, hotel, roomType string, start, end time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availableLocked(hotel, roomType, start, end)
}

// ByCode implements the reservation read store.
func (s *Store) ByCode(_ context.Context, code string) (*reservation.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotByCodeLocked(code)
}

// ListStays implements the stay read store.
func (s *Store) ListStays(_ context.Context) []reservation.Stay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stays := make([]reservation.Stay, 0, len(s.stays))
	for _, stay := range s.stays {
		copied, err := cloneStay(stay)
		if err != nil {
			continue
		}
		stays = append(stays, copied)
	}
	return stays
}

// The manual override always wins; otherwise any blocking reservation with
// an overlapping half-open date range makes the room unavailable. Linear
// scan, replaceable behind shared.AvailabilityChecker.
func (s *Store) availableLocked(hotel, roomType string, start, end time.Time) bool {
	if s.occupancy[occupancyKey{hotel: hotel, roomType: roomType}] == reservation.RoomOccupied {
		return false
	}
	for i := range s.reservations {
		r := &s.reservations[i]
		if r.Hotel != hotel || r.RoomType != roomType {
			continue
		}
		if !r.Status.Blocks() {
			continue
		}
		if dates.Overlaps(r.CheckIn, r.CheckOut, start, end) {
			return false
		}
	}
	return true
}

func (s *Store) snapshotByCodeLocked(code string) (*reservation.Snapshot, error) {
	idx, ok := s.byCode[code]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation "+code+" not found")
	}
	copied, err := cloneSnapshot(s.reservations[idx])
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to copy reservation", err)
	}
	return &copied, nil
}

// storeTx is the write-lock view handed to unit-of-work closures.
type storeTx struct {
	s *Store
}

func (t *storeTx) Reservations() shared.ReservationRepository { return &txReservations{s: t.s} }
func (t *storeTx) Occupancy() shared.OccupancyRepository      { return &txOccupancy{s: t.s} }
func (t *storeTx) Stays() shared.StayRepository               { return &txStays{s: t.s} }

func (t *storeTx) RoomAvailable(hotel, roomType string, start, end time.Time) bool {
	return t.s.availableLocked(hotel, roomType, start, end)
}

type txReservations struct {
	s *Store
}

// Insert re-enforces the overlap invariant even though the command layer
// checks it first: the store is the last line of defense against two
// blocking reservations sharing a room and date range.
func (r *txReservations) Insert(_ context.Context, snap reservation.Snapshot) error {
	if _, exists := r.s.byCode[snap.ConfirmationCode]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "confirmation code "+snap.ConfirmationCode+" already in use")
	}
	if snap.Status.Blocks() && !r.s.availableLocked(snap.Hotel, snap.RoomType, snap.CheckIn, snap.CheckOut) {
		return infra.NewRepoErr(infra.KindConflict, "room "+snap.Hotel+"/"+snap.RoomType+" not available")
	}

	copied, err := cloneSnapshot(snap)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to copy reservation", err)
	}
	r.s.reservations = append(r.s.reservations, copied)
	r.s.byCode[snap.ConfirmationCode] = len(r.s.reservations) - 1
	return nil
}

func (r *txReservations) ByCode(_ context.Context, code string) (*reservation.Snapshot, error) {
	return r.s.snapshotByCodeLocked(code)
}

func (r *txReservations) Update(_ context.Context, snap reservation.Snapshot) error {
	idx, ok := r.s.byCode[snap.ConfirmationCode]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation "+snap.ConfirmationCode+" not found")
	}
	copied, err := cloneSnapshot(snap)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to copy reservation", err)
	}
	r.s.reservations[idx] = copied
	return nil
}

func (r *txReservations) CodeExists(_ context.Context, code string) bool {
	_, exists := r.s.byCode[code]
	return exists
}

type txOccupancy struct {
	s *Store
}

func (o *txOccupancy) State(_ context.Context, hotel, roomType string) reservation.RoomState {
	state, ok := o.s.occupancy[occupancyKey{hotel: hotel, roomType: roomType}]
	if !ok {
		return reservation.RoomAvailable
	}
	return state
}

func (o *txOccupancy) Set(_ context.Context, hotel, roomType string, state reservation.RoomState) {
	o.s.occupancy[occupancyKey{hotel: hotel, roomType: roomType}] = state
}

type txStays struct {
	s *Store
}

func (st *txStays) Append(_ context.Context, stay reservation.Stay) {
	copied, err := cloneStay(stay)
	if err != nil {
		// Archive the shared value rather than drop the record.
		copied = stay
	}
	st.s.stays = append(st.s.stays, copied)
}

// Deep copies keep store-owned slices and pointers from leaking to callers.
func cloneSnapshot(src reservation.Snapshot) (reservation.Snapshot, error) {
	var dst reservation.Snapshot
	err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true})
	return dst, err
}

func cloneStay(src reservation.Stay) (reservation.Stay, error) {
	var dst reservation.Stay
	err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true})
	return dst, err
}
