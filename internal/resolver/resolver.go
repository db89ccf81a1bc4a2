package resolver

import (
	"context"
	"errors"
	"strings"

	"ProviderAPI/internal/db"
	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/model"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// Search returns one page of providers matching params plus the size of the whole match set.
//
// Without SnapshotReads the page and the count are read in parallel on separate
// connections, so total can drift from the page if the data changes in between.
func (s *Service) Search(ctx context.Context, params model.SearchParams) (model.SearchResult, error) {
	page := model.NormalizePage(params.Page, params.Limit, s.opts.DefaultLimit, s.opts.MaxLimit)

	ctx, span := tracer.Start(ctx, "providers.search")
	defer span.End()
	span.SetAttributes(
		attribute.Bool("search.query", strings.TrimSpace(params.Query) != ""),
		attribute.String("search.state", params.State),
		attribute.String("search.specialty", params.Specialty),
		attribute.Int("search.page", page.Page),
		attribute.Int("search.limit", page.Limit),
		attribute.Bool("search.snapshot", s.opts.SnapshotReads),
	)

	var (
		providers []model.Provider
		total     int64
	)

	if s.opts.SnapshotReads {
		err := s.store.ReadSnapshot(ctx, func(q db.Querier) error {
			var err error
			if providers, err = fetchProviders(ctx, q, "search", model.BuildSearchQuery(q.Dialect(), params, page)); err != nil {
				return err
			}
			if total, err = fetchCount(ctx, q, params); err != nil {
				return err
			}
			return attachRelations(ctx, q, providers, false)
		})
		if err != nil {
			err = asStorageError("snapshot", err)
			span.SetStatus(codes.Error, err.Error())
			logFailure("search_failed", err, searchFields(params, page))
			return model.SearchResult{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			found, err := fetchProviders(gctx, s.store, "search", model.BuildSearchQuery(s.store.Dialect(), params, page))
			if err != nil {
				return err
			}
			if err := attachRelations(gctx, s.store, found, true); err != nil {
				return err
			}
			providers = found
			return nil
		})
		g.Go(func() error {
			n, err := fetchCount(gctx, s.store, params)
			total = n
			return err
		})
		if err := g.Wait(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			logFailure("search_failed", err, searchFields(params, page))
			return model.SearchResult{}, err
		}
	}

	span.SetAttributes(attribute.Int64("search.total", total))
	return model.SearchResult{
		Providers: providers,
		Total:     total,
		Page:      page.Page,
		Limit:     page.Limit,
	}, nil
}

// Filters lists the distinct states and primary specialties present in the directory.
func (s *Service) Filters(ctx context.Context) (model.FilterOptions, error) {
	ctx, span := tracer.Start(ctx, "providers.filters")
	defer span.End()

	opts := model.FilterOptions{States: []string{}, Specialties: []string{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		states, err := fetchDistinct(gctx, s.store, model.FilterState)
		if err == nil {
			opts.States = states
		}
		return err
	})
	g.Go(func() error {
		specialties, err := fetchDistinct(gctx, s.store, model.FilterSpecialty)
		if err == nil {
			opts.Specialties = specialties
		}
		return err
	})
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		logFailure("filters_failed", err, nil)
		return model.FilterOptions{}, err
	}
	return opts, nil
}

// Detail returns the provider with the given NPI and all of its related rows,
// or model.ErrNotFound.
func (s *Service) Detail(ctx context.Context, npi string) (model.Provider, error) {
	npi = strings.TrimSpace(npi)

	ctx, span := tracer.Start(ctx, "providers.detail")
	defer span.End()
	span.SetAttributes(attribute.String("provider.npi", npi))

	if npi == "" {
		return model.Provider{}, model.ErrNotFound
	}

	found, err := fetchProviders(ctx, s.store, "detail", model.BuildDetailQuery(s.store.Dialect(), npi))
	if err == nil && len(found) > 0 {
		err = attachRelations(ctx, s.store, found[:1], true)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logFailure("detail_failed", err, map[string]any{"npi": npi})
		return model.Provider{}, err
	}
	if len(found) == 0 {
		logger.Info("provider_not_found", map[string]any{"npi": npi})
		return model.Provider{}, model.ErrNotFound
	}
	return found[0], nil
}

// Ready reports whether the store answers.
func (s *Service) Ready(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return model.NewStorageError("ping", err)
	}
	return nil
}

func asStorageError(op string, err error) error {
	var se *model.StorageError
	if errors.As(err, &se) {
		return err
	}
	return model.NewStorageError(op, err)
}

// logFailure logs storage errors; requests the client abandoned are only debug noise.
func logFailure(event string, err error, fields map[string]any) {
	entry := map[string]any{"error": err.Error()}
	for k, v := range fields {
		entry[k] = v
	}
	if errors.Is(err, context.Canceled) {
		logger.Debug(event, entry)
		return
	}
	logger.Error(event, entry)
}

func searchFields(params model.SearchParams, page model.Page) map[string]any {
	return map[string]any{
		"query":     params.Query,
		"state":     params.State,
		"specialty": params.Specialty,
		"page":      page.Page,
		"limit":     page.Limit,
	}
}
