package catalog

import (
	"fmt"
	"strings"
	"time"

	"dreamstay/internal/pkg/dates"
	"dreamstay/internal/pkg/ptr"
)

// Capacity is the maximum number of occupants per guest category.
type Capacity struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Babies   int `json:"babies"`
}

// Fits reports whether a party of the given sizes can occupy the room.
func (c Capacity) Fits(adults, children, babies int) bool {
	return adults <= c.Adults && children <= c.Children && babies <= c.Babies
}

// Label renders the capacity the way the frontend displays it,
// e.g. "2 adultos + 1 niño".
func (c Capacity) Label() string {
	var parts []string
	if c.Adults > 0 {
		parts = append(parts, pluralize(c.Adults, "adulto", "adultos"))
	}
	if c.Children > 0 {
		parts = append(parts, pluralize(c.Children, "niño", "niños"))
	}
	if c.Babies > 0 {
		parts = append(parts, pluralize(c.Babies, "bebé", "bebés"))
	}
	if len(parts) == 0 {
		return "0 huéspedes"
	}
	return strings.Join(parts, " + ")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Rates holds per-night base prices per guest category. Child and Baby may be
// nil, in which case they derive from the adult rate (50% and free).
type Rates struct {
	Adult float64
	Child *float64
	Baby  *float64
}

const childRateFraction = 0.5

// Resolve materializes the per-category rates, filling the defaults for
// categories the catalog omits.
func (r Rates) Resolve() (adult, child, baby float64) {
	adult = r.Adult
	child = ptr.Deref(r.Child, adult*childRateFraction)
	baby = ptr.Deref(r.Baby, 0)
	return adult, child, baby
}

// RoomType is a bookable room class within a hotel. Immutable at runtime.
type RoomType struct {
	Type     string
	Name     string
	Capacity Capacity
	Rates    Rates
}

// Offer is a date-windowed discount on one or more guest-category rates.
// The validity window is inclusive on both ends.
type Offer struct {
	Name        string
	Description string
	Start       time.Time
	End         time.Time
	// Discount fractions in [0,1] per category; zero means the offer does
	// not touch that category.
	AdultDiscount float64
	ChildDiscount float64
	BabyDiscount  float64
}

// Label is the human-readable tag recorded when the offer is applied.
func (o Offer) Label() string {
	if o.Description != "" {
		return o.Description
	}
	return o.Name
}

// ActiveDuring reports whether the offer's validity window overlaps the stay.
// The inclusive end date counts as a whole day, so the overlap test pushes it
// one day out to behave as an exclusive bound.
func (o Offer) ActiveDuring(start, end time.Time) bool {
	return dates.Overlaps(o.Start, o.End.AddDate(0, 0, 1), start, end)
}

// Hotel owns an ordered list of room types and offers. Immutable at runtime.
type Hotel struct {
	ID     int
	Name   string
	City   string
	Rooms  []RoomType
	Offers []Offer
}

// Room finds a room type by its tag.
func (h Hotel) Room(roomType string) (RoomType, bool) {
	for _, room := range h.Rooms {
		if room.Type == roomType {
			return room, true
		}
	}
	return RoomType{}, false
}

// ActiveOffers returns the hotel's offers whose windows overlap the stay,
// in catalog order. Order matters: discounts apply sequentially.
func (h Hotel) ActiveOffers(start, end time.Time) []Offer {
	var active []Offer
	for _, offer := range h.Offers {
		if offer.ActiveDuring(start, end) {
			active = append(active, offer)
		}
	}
	return active
}
