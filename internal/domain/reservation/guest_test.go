//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"dreamstay/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guestToday = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func TestNewGuest(t *testing.T) {
	t.Run("valid adult", func(t *testing.T) {
		g, err := reservation.NewGuest("María Gómez", "01/01/1990", guestToday)
		require.NoError(t, err)
		assert.Equal(t, "María Gómez", g.Name)
		assert.Equal(t, 35, g.Age)
		assert.Equal(t, reservation.CategoryAdult, g.Category)
	})

	t.Run("iso birth date accepted", func(t *testing.T) {
		g, err := reservation.NewGuest("Pedro", "2015-06-15", guestToday)
		require.NoError(t, err)
		assert.Equal(t, reservation.CategoryChild, g.Category)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		g, err := reservation.NewGuest("  Ana  ", "01/01/2000", guestToday)
		require.NoError(t, err)
		assert.Equal(t, "Ana", g.Name)
	})

	cases := []struct {
		name  string
		guest string
		birth string
		errIs error
	}{
		{name: "empty name", guest: "", birth: "01/01/1990", errIs: reservation.ErrEmptyGuestName},
		{name: "blank name", guest: "   ", birth: "01/01/1990", errIs: reservation.ErrEmptyGuestName},
		{name: "digits in name", guest: "Juan 2", birth: "01/01/1990", errIs: reservation.ErrInvalidGuestName},
		{name: "malformed birth", guest: "Juan", birth: "99/99/9999", errIs: reservation.ErrInvalidBirthDate},
		{name: "missing birth", guest: "Juan", birth: "", errIs: reservation.ErrInvalidBirthDate},
		{name: "future birth", guest: "Juan", birth: "01/01/2030", errIs: reservation.ErrFutureBirthDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewGuest(tc.guest, tc.birth, guestToday)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestGuestCategories(t *testing.T) {
	cases := []struct {
		name  string
		birth string
		want  reservation.Category
	}{
		{name: "eighteen today is adult", birth: "01/07/2007", want: reservation.CategoryAdult},
		{name: "seventeen is child", birth: "02/07/2007", want: reservation.CategoryChild},
		{name: "two is child", birth: "01/07/2023", want: reservation.CategoryChild},
		{name: "under two is baby", birth: "02/07/2023", want: reservation.CategoryBaby},
		{name: "newborn is baby", birth: "30/06/2025", want: reservation.CategoryBaby},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := reservation.NewGuest("Guest", tc.birth, guestToday)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.Category)
		})
	}
}

func TestCountGuests(t *testing.T) {
	mk := func(birth string) reservation.Guest {
		g, err := reservation.NewGuest("Guest", birth, guestToday)
		require.NoError(t, err)
		return g
	}

	counts := reservation.CountGuests([]reservation.Guest{
		mk("01/01/1980"),
		mk("01/01/1990"),
		mk("01/01/2015"),
		mk("01/01/2024"),
	})
	assert.Equal(t, reservation.GuestCounts{Adult: 2, Child: 1, Baby: 1}, counts)
	assert.Equal(t, 4, counts.Total())

	assert.Equal(t, reservation.GuestCounts{}, reservation.CountGuests(nil))
}
