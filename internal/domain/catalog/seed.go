package catalog

import (
	"time"

	"dreamstay/internal/pkg/dates"
	"dreamstay/internal/pkg/errs"
	"dreamstay/internal/pkg/ptr"
)

// Default builds the seed catalog the service ships with.
func Default() (*Catalog, error) {
	hotels, err := seedHotels()
	if err != nil {
		return nil, err
	}
	return New(hotels)
}

func seedHotels() ([]Hotel, error) {
	ninosGratis, err := seedOffer(
		"Niños gratis temporada baja",
		"Niños gratis en temporada baja",
		"01/05/2025", "31/08/2025",
		Offer{ChildDiscount: 1.0},
	)
	if err != nil {
		return nil, err
	}
	promoBebes, err := seedOffer(
		"Promo bebés con cuna",
		"Bebés con cuna sin cargo",
		"01/03/2025", "31/12/2025",
		Offer{BabyDiscount: 1.0},
	)
	if err != nil {
		return nil, err
	}

	return []Hotel{
		{
			ID:   1,
			Name: "Hotel Central",
			City: "Buenos Aires",
			Rooms: []RoomType{
				{
					Type:     "Single",
					Name:     "Single",
					Capacity: Capacity{Adults: 1, Children: 0, Babies: 0},
					Rates:    Rates{Adult: 100.0, Child: ptr.To(100.0), Baby: ptr.To(0.0)},
				},
				{
					Type:     "Doble",
					Name:     "Doble",
					Capacity: Capacity{Adults: 2, Children: 1, Babies: 0},
					Rates:    Rates{Adult: 150.0, Child: ptr.To(75.0), Baby: ptr.To(0.0)},
				},
				{
					Type:     "Suite",
					Name:     "Suite",
					Capacity: Capacity{Adults: 3, Children: 2, Babies: 1},
					Rates:    Rates{Adult: 250.0, Child: ptr.To(125.0), Baby: ptr.To(0.0)},
				},
			},
			Offers: []Offer{ninosGratis},
		},
		{
			ID:   2,
			Name: "Hotel Playa",
			City: "Mar del Plata",
			Rooms: []RoomType{
				{
					Type:     "Single",
					Name:     "Single",
					Capacity: Capacity{Adults: 1, Children: 0, Babies: 0},
					Rates:    Rates{Adult: 90.0, Child: ptr.To(90.0), Baby: ptr.To(0.0)},
				},
				{
					Type:     "Doble",
					Name:     "Doble",
					Capacity: Capacity{Adults: 2, Children: 1, Babies: 0},
					Rates:    Rates{Adult: 140.0, Child: ptr.To(70.0), Baby: ptr.To(0.0)},
				},
				{
					Type:     "Suite",
					Name:     "Suite",
					Capacity: Capacity{Adults: 3, Children: 2, Babies: 1},
					Rates:    Rates{Adult: 220.0, Child: ptr.To(110.0), Baby: ptr.To(0.0)},
				},
			},
			Offers: []Offer{promoBebes},
		},
	}, nil
}

func seedOffer(name, description, start, end string, discounts Offer) (Offer, error) {
	startDate, err := seedDate(start)
	if err != nil {
		return Offer{}, err
	}
	endDate, err := seedDate(end)
	if err != nil {
		return Offer{}, err
	}
	return Offer{
		Name:          name,
		Description:   description,
		Start:         startDate,
		End:           endDate,
		AdultDiscount: discounts.AdultDiscount,
		ChildDiscount: discounts.ChildDiscount,
		BabyDiscount:  discounts.BabyDiscount,
	}, nil
}

func seedDate(s string) (time.Time, error) {
	t, ok := dates.Parse(s)
	if !ok {
		return time.Time{}, errs.New("catalog: malformed seed date " + s)
	}
	return t, nil
}
