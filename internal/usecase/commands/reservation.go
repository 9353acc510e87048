package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dreamstay/internal/domain/catalog"
	"dreamstay/internal/domain/reservation"
	reqdto "dreamstay/internal/handler/dto/request"
	"dreamstay/internal/infra"
	"dreamstay/internal/pkg/clock"
	"dreamstay/internal/pkg/dates"
	"dreamstay/internal/pkg/errs"
	"dreamstay/internal/usecase/shared"
)

var (
	ErrUnknownHotelOrRoom = errs.New("unknown hotel or room type")
	ErrRoomUnavailable    = errs.New("room unavailable for the requested dates")
	ErrCheckInNotAllowed  = errs.New("check-in requires a confirmed reservation")
	ErrBeforeReservedDate = errs.New("check-in attempted before the reserved date")
	ErrRoomWalkInOccupied = errs.New("room already physically occupied")
	ErrCheckOutNotAllowed = errs.New("check-out requires an occupied room")
	ErrCodeSpaceExhausted = errs.New("could not allocate a unique confirmation code")
)

// ReservationCommands drives the reservation lifecycle:
// create -> check-in -> check-out.
type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*reservation.Snapshot, error)
	CheckIn(ctx context.Context, confirmationCode string) (*reservation.Snapshot, error)
	CheckOut(ctx context.Context, confirmationCode string) (*reservation.Snapshot, error)
}

type reservationCommandsImpl struct {
	catalog   *catalog.Catalog
	uow       shared.UnitOfWork
	priceCalc reservation.PriceCalculator
	codes     reservation.CodeGenerator
	clock     clock.Clock
}

func NewReservationCommands(
	cat *catalog.Catalog,
	uow shared.UnitOfWork,
	priceCalc reservation.PriceCalculator,
	codes reservation.CodeGenerator,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		catalog:   cat,
		uow:       uow,
		priceCalc: priceCalc,
		codes:     codes,
		clock:     clk,
	}
}

// Create runs the full validation chain before touching the store, then
// re-checks availability and inserts under the write lock so no competing
// request can book the same room for overlapping dates.
func (c *reservationCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
) (*reservation.Snapshot, error) {
	email := strings.TrimSpace(req.ContactEmail)
	if email == "" {
		return nil, shared.NewValidationError("El correo electronico de contacto es obligatorio")
	}
	if !reservation.ValidEmail(email) {
		return nil, shared.NewValidationError("El correo electronico de contacto tiene un formato invalido")
	}
	if field, missing := missingField(req); missing {
		return nil, shared.NewValidationError("Falta el campo " + field)
	}

	hotel, room, ok := c.catalog.FindRoom(req.Hotel, req.RoomType)
	if !ok {
		return nil, ErrUnknownHotelOrRoom
	}

	checkIn, okIn := dates.Parse(req.CheckIn)
	checkOut, okOut := dates.Parse(req.CheckOut)
	if !okIn || !okOut || !checkOut.After(checkIn) {
		return nil, shared.NewValidationError("Fechas inválidas")
	}

	if len(req.Guests) == 0 {
		return nil, shared.NewValidationError("Debe haber al menos un huésped")
	}

	today := c.clock.Now()
	guests := make([]reservation.Guest, 0, len(req.Guests))
	for i, g := range req.Guests {
		guest, err := reservation.NewGuest(g.Name, g.Birth, today)
		if err != nil {
			return nil, guestValidationError(i+1, err)
		}
		guests = append(guests, guest)
	}

	counts := reservation.CountGuests(guests)
	if counts.Adult == 0 {
		return nil, shared.NewValidationError("Debe haber al menos un adulto en la reserva")
	}
	if !room.Capacity.Fits(counts.Adult, counts.Child, counts.Baby) {
		return nil, shared.NewValidationError("La cantidad de huéspedes excede la capacidad de la habitación seleccionada")
	}

	nights := dates.Nights(checkIn, checkOut)
	activeOffers := hotel.ActiveOffers(checkIn, checkOut)
	price, appliedOffers := c.priceCalc.Quote(room, counts, nights, activeOffers)

	var created reservation.Snapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if !tx.RoomAvailable(hotel.Name, room.Type, checkIn, checkOut) {
			return ErrRoomUnavailable
		}

		code, err := c.uniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		entity, err := reservation.NewReservation(
			code, hotel, room, email, checkIn, checkOut,
			guests, price, appliedOffers, c.clock.Now(),
		)
		if err != nil {
			return creationValidationError(err)
		}

		created = entity.Snapshot()
		if err := tx.Reservations().Insert(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrRoomUnavailable)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"code", created.ConfirmationCode,
		"hotel", created.Hotel,
		"room_type", created.RoomType,
		"nights", created.Price.Nights,
		"total", created.Price.Total,
	)
	return &created, nil
}

// CheckIn moves a confirmed reservation to occupied. The reserved calendar
// day must have arrived and the room must not be blocked by a walk-in.
func (c *reservationCommandsImpl) CheckIn(
	ctx context.Context,
	confirmationCode string,
) (*reservation.Snapshot, error) {
	code := strings.ToUpper(strings.TrimSpace(confirmationCode))
	if code == "" {
		return nil, shared.NewValidationError("Debe proporcionar el código de confirmación")
	}

	var snap reservation.Snapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Reservations().ByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCheckInNotAllowed)
			}
			return err
		}

		entity := reservation.Reconstruct(*stored)
		if err := entity.CheckIn(c.clock.Now()); err != nil {
			switch {
			case errors.Is(err, reservation.ErrNotConfirmed):
				return ErrCheckInNotAllowed
			case errors.Is(err, reservation.ErrBeforeCheckIn):
				return ErrBeforeReservedDate
			default:
				return err
			}
		}

		// Walk-in blocking wins over the reservation.
		if tx.Occupancy().State(ctx, entity.Hotel(), entity.RoomType()) == reservation.RoomOccupied {
			return ErrRoomWalkInOccupied
		}

		tx.Occupancy().Set(ctx, entity.Hotel(), entity.RoomType(), reservation.RoomOccupied)
		snap = entity.Snapshot()
		return tx.Reservations().Update(ctx, snap)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("check-in completed", "code", snap.ConfirmationCode, "hotel", snap.Hotel, "room_type", snap.RoomType)
	return &snap, nil
}

// CheckOut moves an occupied reservation to completed, frees the room and
// appends the archival stay record.
func (c *reservationCommandsImpl) CheckOut(
	ctx context.Context,
	confirmationCode string,
) (*reservation.Snapshot, error) {
	code := strings.ToUpper(strings.TrimSpace(confirmationCode))
	if code == "" {
		return nil, shared.NewValidationError("Debe proporcionar el código de confirmación")
	}

	var snap reservation.Snapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Reservations().ByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCheckOutNotAllowed)
			}
			return err
		}

		entity := reservation.Reconstruct(*stored)
		if err := entity.CheckOut(c.clock.Now()); err != nil {
			if errors.Is(err, reservation.ErrNotOccupied) {
				return ErrCheckOutNotAllowed
			}
			return err
		}

		stay, err := entity.Stay()
		if err != nil {
			return err
		}

		tx.Occupancy().Set(ctx, entity.Hotel(), entity.RoomType(), reservation.RoomAvailable)
		tx.Stays().Append(ctx, stay)
		snap = entity.Snapshot()
		return tx.Reservations().Update(ctx, snap)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("check-out completed", "code", snap.ConfirmationCode, "hotel", snap.Hotel, "room_type", snap.RoomType)
	return &snap, nil
}

// uniqueCode regenerates on collision; after repeated collisions at the base
// length it widens the code space before giving up.
func (c *reservationCommandsImpl) uniqueCode(ctx context.Context, tx shared.Tx) (string, error) {
	const maxAttempts = 8
	for _, length := range []int{reservation.CodeLength, reservation.WideCodeLength} {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			code := c.codes.Generate(length)
			if !tx.Reservations().CodeExists(ctx, code) {
				return code, nil
			}
		}
	}
	return "", ErrCodeSpaceExhausted
}

func missingField(req reqdto.CreateReservationRequest) (string, bool) {
	switch {
	case req.Hotel == "":
		return "hotel", true
	case req.RoomType == "":
		return "room_type", true
	case req.CheckIn == "":
		return "checkin", true
	case req.CheckOut == "":
		return "checkout", true
	case req.Guests == nil:
		return "guests", true
	}
	return "", false
}

func guestValidationError(position int, err error) error {
	switch {
	case errors.Is(err, reservation.ErrEmptyGuestName):
		return shared.NewValidationError(fmt.Sprintf("El nombre del huésped %d es obligatorio", position))
	case errors.Is(err, reservation.ErrInvalidGuestName):
		return shared.NewValidationError(fmt.Sprintf("El nombre del huésped %d solo admite letras y espacios", position))
	case errors.Is(err, reservation.ErrInvalidBirthDate):
		return shared.NewValidationError(fmt.Sprintf("La fecha de nacimiento del huésped %d debe tener formato dd/mm/yyyy", position))
	case errors.Is(err, reservation.ErrFutureBirthDate):
		return shared.NewValidationError(fmt.Sprintf("La fecha de nacimiento del huésped %d no puede ser futura", position))
	default:
		return err
	}
}

// Backstop for entity-level creation failures; the command validates the
// same conditions up front, so reaching these means a programming error
// upstream rather than bad user input.
func creationValidationError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrNoAdultGuest):
		return shared.NewValidationError("Debe haber al menos un adulto en la reserva")
	case errors.Is(err, reservation.ErrCapacityExceeded):
		return shared.NewValidationError("La cantidad de huéspedes excede la capacidad de la habitación seleccionada")
	case errors.Is(err, reservation.ErrInvalidDates):
		return shared.NewValidationError("Fechas inválidas")
	default:
		return err
	}
}
