//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"dreamstay/internal/domain/catalog"
	"dreamstay/internal/domain/reservation"
	"dreamstay/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dobleRoom() catalog.RoomType {
	return catalog.RoomType{
		Type:     "Doble",
		Name:     "Doble",
		Capacity: catalog.Capacity{Adults: 2, Children: 1},
		Rates:    catalog.Rates{Adult: 150, Child: ptr.To(75.0), Baby: ptr.To(0.0)},
	}
}

func childrenFreeOffer() catalog.Offer {
	return catalog.Offer{
		Name:          "Niños gratis temporada baja",
		Description:   "Niños gratis en temporada baja",
		Start:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		ChildDiscount: 1.0,
	}
}

func TestQuoteWithoutOffers(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()
	counts := reservation.GuestCounts{Adult: 2, Child: 1}

	detail, applied := calc.Quote(dobleRoom(), counts, 2, nil)

	want := reservation.PriceDetail{
		Nights: 2,
		Counts: counts,
		PerNight: reservation.RatesBreakdown{
			Adult: 150,
			Child: 75,
			Baby:  0,
		},
		SubtotalPerNight: 375,
		Total:            750,
	}
	assert.Empty(t, applied)
	assert.Empty(t, cmp.Diff(want, detail))
}

func TestQuoteAppliesChildrenFreeOffer(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()
	counts := reservation.GuestCounts{Adult: 2, Child: 1}

	detail, applied := calc.Quote(dobleRoom(), counts, 2, []catalog.Offer{childrenFreeOffer()})

	require.Equal(t, []string{"Niños gratis en temporada baja"}, applied)
	assert.Equal(t, 0.0, detail.PerNight.Child)
	assert.Equal(t, 300.0, detail.SubtotalPerNight)
	assert.Equal(t, 600.0, detail.Total)
}

func TestQuoteSequentialDiscounts(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()
	offers := []catalog.Offer{
		{Name: "first", AdultDiscount: 0.5},
		{Name: "second", AdultDiscount: 0.5},
	}

	detail, applied := calc.Quote(dobleRoom(), reservation.GuestCounts{Adult: 1}, 1, offers)

	// 150 * 0.5 * 0.5, applied in catalog order
	assert.Equal(t, 37.5, detail.PerNight.Adult)
	assert.Equal(t, []string{"first", "second"}, applied)
}

func TestQuoteClampsToZero(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()
	offers := []catalog.Offer{{Name: "overshoot", AdultDiscount: 1.5}}

	detail, _ := calc.Quote(dobleRoom(), reservation.GuestCounts{Adult: 2}, 3, offers)

	assert.Equal(t, 0.0, detail.PerNight.Adult)
	assert.Equal(t, 0.0, detail.Total)
}

func TestQuoteSkipsOffersThatTouchNothing(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()
	// A baby discount on a room with a zero baby rate still counts as
	// applied; an all-zero offer does not.
	offers := []catalog.Offer{{Name: "noop"}}

	_, applied := calc.Quote(dobleRoom(), reservation.GuestCounts{Adult: 1}, 1, offers)

	assert.Empty(t, applied)
}

func TestQuoteRoundsToTwoDecimals(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()
	room := catalog.RoomType{
		Type:     "Single",
		Capacity: catalog.Capacity{Adults: 1},
		Rates:    catalog.Rates{Adult: 99.99, Child: ptr.To(0.0), Baby: ptr.To(0.0)},
	}
	offers := []catalog.Offer{{Name: "third off", AdultDiscount: 1.0 / 3.0}}

	detail, _ := calc.Quote(room, reservation.GuestCounts{Adult: 1}, 3, offers)

	assert.Equal(t, 66.66, detail.PerNight.Adult)
	assert.Equal(t, 66.66, detail.SubtotalPerNight)
	assert.Equal(t, 199.98, detail.Total)
}
