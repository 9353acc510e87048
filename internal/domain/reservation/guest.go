package reservation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"dreamstay/internal/pkg/dates"
)

var (
	ErrEmptyGuestName   = errors.New("guest name is required")
	ErrInvalidGuestName = errors.New("guest name admits letters and spaces only")
	ErrInvalidBirthDate = errors.New("guest birth date is malformed")
	ErrFutureBirthDate  = errors.New("guest birth date cannot be in the future")
)

// Letters (including Latin-1 accented ones) and spaces.
var nameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ ]+$`)

// Guest is an occupant of a reservation. Age and category are derived from
// the birth date against the submission date and frozen on the record.
type Guest struct {
	Name     string    `json:"name"`
	Birth    time.Time `json:"-"`
	Age      int       `json:"age"`
	Category Category  `json:"category"`
}

// NewGuest validates the raw guest input and derives age and category as of
// today. The birth date accepts the same two formats as every other date.
func NewGuest(name, birthRaw string, today time.Time) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	if !nameRegex.MatchString(name) {
		return Guest{}, ErrInvalidGuestName
	}

	birth, ok := dates.Parse(strings.TrimSpace(birthRaw))
	if !ok {
		return Guest{}, ErrInvalidBirthDate
	}

	age := dates.Age(birth, today)
	if age < 0 {
		return Guest{}, ErrFutureBirthDate
	}

	return Guest{
		Name:     name,
		Birth:    birth,
		Age:      age,
		Category: categoryForAge(age),
	}, nil
}

func categoryForAge(age int) Category {
	switch {
	case age >= 18:
		return CategoryAdult
	case age >= 2:
		return CategoryChild
	default:
		return CategoryBaby
	}
}

// GuestCounts is the party size per category.
type GuestCounts struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
	Baby  int `json:"baby"`
}

// CountGuests tallies a guest list per category.
func CountGuests(guests []Guest) GuestCounts {
	var counts GuestCounts
	for _, g := range guests {
		switch g.Category {
		case CategoryAdult:
			counts.Adult++
		case CategoryChild:
			counts.Child++
		case CategoryBaby:
			counts.Baby++
		}
	}
	return counts
}

func (c GuestCounts) Total() int {
	return c.Adult + c.Child + c.Baby
}
