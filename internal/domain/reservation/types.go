package reservation

// Status is the reservation lifecycle state. Wire values are the Spanish
// terms the API has always exposed.
type Status string

const (
	StatusConfirmed Status = "confirmada"
	StatusOccupied  Status = "ocupada"
	StatusCompleted Status = "completada"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusOccupied, StatusCompleted:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this state occupies its room for
// availability purposes.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusOccupied
}

// RoomState is the manual occupancy override kept per (hotel, room type),
// independent of any reservation. It models physical occupancy such as
// walk-in blocking.
type RoomState string

const (
	RoomOccupied  RoomState = "Ocupada"
	RoomAvailable RoomState = "Disponible"
)

// Category is a guest's age bracket: adult (18+), child (2-17) or baby (<2).
type Category string

const (
	CategoryAdult Category = "adult"
	CategoryChild Category = "child"
	CategoryBaby  Category = "baby"
)
