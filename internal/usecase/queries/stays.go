package queries

import (
	"context"

	"dreamstay/internal/domain/reservation"
)

// StayReadStore is the read-side port over the stay archive.
type StayReadStore interface {
	ListStays(ctx context.Context) []reservation.Stay
}

// StayQueries exposes the archival stay history.
type StayQueries interface {
	List(ctx context.Context) []reservation.Stay
}

type stayQueriesImpl struct {
	readStore StayReadStore
}

func NewStayQueries(readStore StayReadStore) StayQueries {
	return &stayQueriesImpl{readStore: readStore}
}

func (q *stayQueriesImpl) List(ctx context.Context) []reservation.Stay {
	return q.readStore.ListStays(ctx)
}
