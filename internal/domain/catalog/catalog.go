// Package catalog is the static registry of hotels, room types, rates and
// offers. It is built once at startup, validated, and read-only afterwards.
package catalog

import (
	"strings"

	"dreamstay/internal/pkg/errs"
)

// RoomTypeAny is the wildcard accepted by searches in place of a room type.
const RoomTypeAny = "Todos"

type Catalog struct {
	hotels []Hotel
}

// New validates the hotel definitions and builds the registry. A broken
// catalog is a fatal configuration error discovered at startup, never a
// per-request failure.
func New(hotels []Hotel) (*Catalog, error) {
	if len(hotels) == 0 {
		return nil, errs.New("catalog: no hotels defined")
	}
	seenHotels := make(map[string]struct{}, len(hotels))
	for _, h := range hotels {
		if h.Name == "" || h.City == "" {
			return nil, errs.New("catalog: hotel name and city are required")
		}
		if _, dup := seenHotels[h.Name]; dup {
			return nil, errs.New("catalog: duplicate hotel name " + h.Name)
		}
		seenHotels[h.Name] = struct{}{}

		if len(h.Rooms) == 0 {
			return nil, errs.New("catalog: hotel " + h.Name + " has no rooms")
		}
		seenRooms := make(map[string]struct{}, len(h.Rooms))
		for _, room := range h.Rooms {
			if room.Type == "" || room.Type == RoomTypeAny {
				return nil, errs.New("catalog: invalid room type in hotel " + h.Name)
			}
			if _, dup := seenRooms[room.Type]; dup {
				return nil, errs.New("catalog: duplicate room type " + room.Type + " in hotel " + h.Name)
			}
			seenRooms[room.Type] = struct{}{}
			if room.Capacity.Adults < 1 || room.Capacity.Children < 0 || room.Capacity.Babies < 0 {
				return nil, errs.New("catalog: invalid capacity for " + h.Name + "/" + room.Type)
			}
			adult, child, baby := room.Rates.Resolve()
			if adult < 0 || child < 0 || baby < 0 {
				return nil, errs.New("catalog: negative rate for " + h.Name + "/" + room.Type)
			}
		}
		for _, offer := range h.Offers {
			if offer.Name == "" {
				return nil, errs.New("catalog: unnamed offer in hotel " + h.Name)
			}
			if offer.End.Before(offer.Start) {
				return nil, errs.New("catalog: offer " + offer.Name + " ends before it starts")
			}
			if offer.AdultDiscount < 0 || offer.ChildDiscount < 0 || offer.BabyDiscount < 0 {
				return nil, errs.New("catalog: negative discount in offer " + offer.Name)
			}
		}
	}
	return &Catalog{hotels: hotels}, nil
}

// Hotels returns every hotel in catalog order.
func (c *Catalog) Hotels() []Hotel {
	return c.hotels
}

// HotelsInCity matches the city case-insensitively.
func (c *Catalog) HotelsInCity(city string) []Hotel {
	var matched []Hotel
	for _, h := range c.hotels {
		if strings.EqualFold(h.City, city) {
			matched = append(matched, h)
		}
	}
	return matched
}

// FindRoom resolves a (hotel name, room type) pair.
func (c *Catalog) FindRoom(hotelName, roomType string) (Hotel, RoomType, bool) {
	for _, h := range c.hotels {
		if h.Name != hotelName {
			continue
		}
		if room, ok := h.Room(roomType); ok {
			return h, room, true
		}
		return Hotel{}, RoomType{}, false
	}
	return Hotel{}, RoomType{}, false
}

// HasRoomType reports whether any hotel defines the given room type.
func (c *Catalog) HasRoomType(roomType string) bool {
	_, ok := c.FirstRoomOfType(roomType)
	return ok
}

// FirstRoomOfType returns the first room definition matching the type across
// all hotels, used for the capacity pre-check on searches that request a
// specific room type.
func (c *Catalog) FirstRoomOfType(roomType string) (RoomType, bool) {
	for _, h := range c.hotels {
		if room, ok := h.Room(roomType); ok {
			return room, true
		}
	}
	return RoomType{}, false
}
