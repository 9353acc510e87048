package queries

import (
	"context"
	"strings"

	"dreamstay/internal/domain/reservation"
	"dreamstay/internal/infra"
	"dreamstay/internal/pkg/errs"
	"dreamstay/internal/usecase/shared"
)

var ErrReservationNotFound = errs.New("reservation not found")

// ReservationReadStore is the read-side port for reservation lookups.
type ReservationReadStore interface {
	ByCode(ctx context.Context, code string) (*reservation.Snapshot, error)
}

// ReservationQueries answers guest-facing reservation lookups. The only
// credential is the code+email pairing.
type ReservationQueries interface {
	FindByCodeAndEmail(ctx context.Context, code, email string) (*reservation.Snapshot, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

// FindByCodeAndEmail upper-cases the code before the exact lookup and
// compares the email case-insensitively. A code that exists under a
// different email is reported as not found, not as a mismatch.
func (q *reservationQueriesImpl) FindByCodeAndEmail(
	ctx context.Context,
	code, email string,
) (*reservation.Snapshot, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	email = strings.TrimSpace(email)

	if code == "" {
		return nil, shared.NewValidationError("El codigo de reserva es obligatorio")
	}
	if email == "" {
		return nil, shared.NewValidationError("El correo electronico es obligatorio")
	}
	if !reservation.ValidEmail(email) {
		return nil, shared.NewValidationError("El correo electronico tiene un formato invalido")
	}

	snap, err := q.readStore.ByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	if !strings.EqualFold(snap.ContactEmail, email) {
		return nil, ErrReservationNotFound
	}
	return snap, nil
}
