//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"dreamstay/internal/domain/catalog"
	"dreamstay/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validHotels() []catalog.Hotel {
	return []catalog.Hotel{
		{
			ID:   1,
			Name: "Hotel Test",
			City: "Rosario",
			Rooms: []catalog.RoomType{
				{
					Type:     "Single",
					Name:     "Single",
					Capacity: catalog.Capacity{Adults: 1},
					Rates:    catalog.Rates{Adult: 80},
				},
			},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c, err := catalog.New(validHotels())
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Len(t, c.Hotels(), 1)
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func([]catalog.Hotel) []catalog.Hotel
		}{
			{
				name:   "no hotels",
				mutate: func([]catalog.Hotel) []catalog.Hotel { return nil },
			},
			{
				name: "missing city",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].City = ""
					return hs
				},
			},
			{
				name: "duplicate hotel name",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					return append(hs, hs[0])
				},
			},
			{
				name: "no rooms",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].Rooms = nil
					return hs
				},
			},
			{
				name: "wildcard as room type",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].Rooms[0].Type = catalog.RoomTypeAny
					return hs
				},
			},
			{
				name: "duplicate room type",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].Rooms = append(hs[0].Rooms, hs[0].Rooms[0])
					return hs
				},
			},
			{
				name: "zero adult capacity",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].Rooms[0].Capacity.Adults = 0
					return hs
				},
			},
			{
				name: "negative rate",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].Rooms[0].Rates.Adult = -1
					return hs
				},
			},
			{
				name: "offer ends before it starts",
				mutate: func(hs []catalog.Hotel) []catalog.Hotel {
					hs[0].Offers = []catalog.Offer{{
						Name:  "broken",
						Start: day(2025, 8, 1),
						End:   day(2025, 7, 1),
					}}
					return hs
				},
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := catalog.New(tc.mutate(validHotels()))
				assert.Error(t, err)
			})
		}
	})
}

func TestDefaultSeed(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	hotels := c.Hotels()
	require.Len(t, hotels, 2)
	assert.Equal(t, "Hotel Central", hotels[0].Name)
	assert.Equal(t, "Buenos Aires", hotels[0].City)
	assert.Equal(t, "Hotel Playa", hotels[1].Name)
	assert.Equal(t, "Mar del Plata", hotels[1].City)

	_, doble, ok := c.FindRoom("Hotel Central", "Doble")
	require.True(t, ok)
	adult, child, baby := doble.Rates.Resolve()
	assert.Equal(t, 150.0, adult)
	assert.Equal(t, 75.0, child)
	assert.Equal(t, 0.0, baby)
}

func TestHotelsInCity(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Len(t, c.HotelsInCity("buenos aires"), 1)
	assert.Len(t, c.HotelsInCity("BUENOS AIRES"), 1)
	assert.Empty(t, c.HotelsInCity("Córdoba"))
}

func TestFindRoom(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	hotel, room, ok := c.FindRoom("Hotel Playa", "Suite")
	require.True(t, ok)
	assert.Equal(t, "Hotel Playa", hotel.Name)
	assert.Equal(t, 220.0, room.Rates.Adult)

	_, _, ok = c.FindRoom("Hotel Playa", "Penthouse")
	assert.False(t, ok)
	_, _, ok = c.FindRoom("Hotel Fantasma", "Single")
	assert.False(t, ok)
}

func TestCapacity(t *testing.T) {
	capacity := catalog.Capacity{Adults: 2, Children: 1, Babies: 0}

	assert.True(t, capacity.Fits(2, 1, 0))
	assert.True(t, capacity.Fits(1, 0, 0))
	assert.False(t, capacity.Fits(3, 0, 0))
	assert.False(t, capacity.Fits(2, 2, 0))
	assert.False(t, capacity.Fits(2, 1, 1))

	assert.Equal(t, "2 adultos + 1 niño", capacity.Label())
	assert.Equal(t, "1 adulto", catalog.Capacity{Adults: 1}.Label())
	assert.Equal(t, "3 adultos + 2 niños + 1 bebé",
		catalog.Capacity{Adults: 3, Children: 2, Babies: 1}.Label())
}

func TestRatesResolve(t *testing.T) {
	// Omitted child and baby rates derive from the adult rate.
	adult, child, baby := catalog.Rates{Adult: 200}.Resolve()
	assert.Equal(t, 200.0, adult)
	assert.Equal(t, 100.0, child)
	assert.Equal(t, 0.0, baby)

	adult, child, baby = catalog.Rates{Adult: 200, Child: ptr.To(150.0), Baby: ptr.To(30.0)}.Resolve()
	assert.Equal(t, 200.0, adult)
	assert.Equal(t, 150.0, child)
	assert.Equal(t, 30.0, baby)
}

func TestOfferActiveDuring(t *testing.T) {
	offer := catalog.Offer{
		Name:          "low season",
		Start:         day(2025, 5, 1),
		End:           day(2025, 8, 31),
		ChildDiscount: 1.0,
	}

	// The inclusive end date still counts as a full day.
	assert.True(t, offer.ActiveDuring(day(2025, 8, 31), day(2025, 9, 2)))
	assert.False(t, offer.ActiveDuring(day(2025, 9, 1), day(2025, 9, 3)))
	assert.True(t, offer.ActiveDuring(day(2025, 4, 20), day(2025, 5, 2)))
	assert.False(t, offer.ActiveDuring(day(2025, 4, 20), day(2025, 5, 1)))
}

func TestOfferLabel(t *testing.T) {
	assert.Equal(t, "desc", catalog.Offer{Name: "name", Description: "desc"}.Label())
	assert.Equal(t, "name", catalog.Offer{Name: "name"}.Label())
}

func TestActiveOffersKeepCatalogOrder(t *testing.T) {
	hotel := catalog.Hotel{
		Offers: []catalog.Offer{
			{Name: "first", Start: day(2025, 1, 1), End: day(2025, 12, 31)},
			{Name: "second", Start: day(2025, 6, 1), End: day(2025, 6, 30)},
		},
	}
	active := hotel.ActiveOffers(day(2025, 6, 10), day(2025, 6, 12))
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Name)
	assert.Equal(t, "second", active[1].Name)
}
