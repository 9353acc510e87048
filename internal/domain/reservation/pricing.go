package reservation

import (
	"math"

	"dreamstay/internal/domain/catalog"
)

// RatesBreakdown is the per-night rate actually billed per category, after
// offers.
type RatesBreakdown struct {
	Adult float64 `json:"adult"`
	Child float64 `json:"child"`
	Baby  float64 `json:"baby"`
}

// PriceDetail is the full price breakdown for a stay. Monetary values are
// rounded to two decimals at computation time and never re-rounded
// downstream.
type PriceDetail struct {
	Nights           int            `json:"nights"`
	Counts           GuestCounts    `json:"counts"`
	PerNight         RatesBreakdown `json:"per_night"`
	SubtotalPerNight float64        `json:"subtotal_per_night"`
	Total            float64        `json:"total"`
}

// PriceCalculator converts a room, a party and a set of active offers into a
// price breakdown plus the labels of the offers that actually reduced a rate.
type PriceCalculator interface {
	Quote(room catalog.RoomType, counts GuestCounts, nights int, offers []catalog.Offer) (PriceDetail, []string)
}

// StandardPriceCalculator applies each active offer sequentially, in catalog
// order, against the current per-category rate.
type StandardPriceCalculator struct{}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{}
}

func (pc *StandardPriceCalculator) Quote(
	room catalog.RoomType,
	counts GuestCounts,
	nights int,
	offers []catalog.Offer,
) (PriceDetail, []string) {
	adultRate, childRate, babyRate := room.Rates.Resolve()

	var appliedOffers []string
	for _, offer := range offers {
		applied := false
		if offer.AdultDiscount > 0 {
			adultRate = discount(adultRate, offer.AdultDiscount)
			applied = true
		}
		if offer.ChildDiscount > 0 {
			childRate = discount(childRate, offer.ChildDiscount)
			applied = true
		}
		if offer.BabyDiscount > 0 {
			babyRate = discount(babyRate, offer.BabyDiscount)
			applied = true
		}
		if applied {
			appliedOffers = append(appliedOffers, offer.Label())
		}
	}

	subtotal := adultRate*float64(counts.Adult) +
		childRate*float64(counts.Child) +
		babyRate*float64(counts.Baby)
	total := subtotal * float64(nights)

	return PriceDetail{
		Nights: nights,
		Counts: counts,
		PerNight: RatesBreakdown{
			Adult: round2(adultRate),
			Child: round2(childRate),
			Baby:  round2(babyRate),
		},
		SubtotalPerNight: round2(subtotal),
		Total:            round2(total),
	}, appliedOffers
}

// A fraction above 1 silently clamps the rate to zero rather than going
// negative; it is not rejected.
func discount(rate, fraction float64) float64 {
	reduced := rate * (1 - fraction)
	if reduced < 0 {
		return 0
	}
	return reduced
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
