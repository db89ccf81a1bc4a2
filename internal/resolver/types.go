package resolver

import (
	"ProviderAPI/internal/db"
	"ProviderAPI/internal/model"
)

// Options tunes pagination and read consistency of a Service.
type Options struct {
	DefaultLimit int
	MaxLimit     int
	// SnapshotReads runs the page, count and relation reads of a search inside
	// one read-only transaction instead of in parallel on pooled connections.
	SnapshotReads bool
}

// Service answers provider searches, filter listings and detail lookups.
// It keeps no mutable state and is safe for concurrent use.
type Service struct {
	store db.Store
	opts  Options
}

func New(store db.Store, opts Options) *Service {
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = model.DefaultLimit
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = model.MaxLimit
		if opts.MaxLimit < opts.DefaultLimit {
			opts.MaxLimit = opts.DefaultLimit
		}
	}
	return &Service{store: store, opts: opts}
}
