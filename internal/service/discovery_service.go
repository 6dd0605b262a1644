package service

import (
	"context"

	"github.com/snapwork/snapwork/internal/query"
	"github.com/snapwork/snapwork/internal/store"
)

// DiscoveryService runs the distance-aware discovery pipeline against a
// fresh snapshot of the relevant collection. It never fails: a storage read
// problem reads as an empty collection and produces an empty result.
type DiscoveryService interface {
	SearchGigs(ctx context.Context, spec query.Spec) []query.AnnotatedGig
	SearchWorkers(ctx context.Context, spec query.Spec) []query.AnnotatedWorker
}

type discoveryService struct {
	store store.Store
}

func NewDiscoveryService(st store.Store) DiscoveryService {
	return &discoveryService{store: st}
}

func (s *discoveryService) SearchGigs(ctx context.Context, spec query.Spec) []query.AnnotatedGig {
	return query.Gigs(s.store.LoadGigs(ctx), spec)
}

func (s *discoveryService) SearchWorkers(ctx context.Context, spec query.Spec) []query.AnnotatedWorker {
	return query.Workers(s.store.LoadUsers(ctx), spec)
}
