package resolver

import (
	"context"

	"ProviderAPI/internal/db"
	"ProviderAPI/internal/model"

	"golang.org/x/sync/errgroup"
)

// attachRelations fills Taxonomies and MedicareServices of every provider with one
// batched query per relation keyed by the providers' NPIs.
// With parallel set both relation queries run at once; a snapshot Querier must pass false.
func attachRelations(ctx context.Context, q db.Querier, providers []model.Provider, parallel bool) error {
	if len(providers) == 0 {
		return nil
	}

	index := make(map[string]int, len(providers))
	npis := make([]string, 0, len(providers))
	for i := range providers {
		providers[i].Taxonomies = []model.ProviderTaxonomy{}
		providers[i].MedicareServices = []model.MedicareService{}
		npi := providers[i].NPI
		if _, seen := index[npi]; seen {
			continue
		}
		index[npi] = i
		npis = append(npis, npi)
	}

	d := q.Dialect()
	loadTaxonomies := func(ctx context.Context) error {
		return runQuery(ctx, q, "taxonomies", model.BuildTaxonomiesQuery(d, npis), func(rows db.Rows) error {
			var t model.ProviderTaxonomy
			if err := rows.Scan(model.TaxonomyScanTargets(&t)...); err != nil {
				return err
			}
			if i, ok := index[t.NPI]; ok {
				providers[i].Taxonomies = append(providers[i].Taxonomies, t)
			}
			return nil
		})
	}
	loadServices := func(ctx context.Context) error {
		return runQuery(ctx, q, "medicare_services", model.BuildMedicareServicesQuery(d, npis), func(rows db.Rows) error {
			var s model.MedicareService
			if err := rows.Scan(model.MedicareServiceScanTargets(&s)...); err != nil {
				return err
			}
			if i, ok := index[s.NPI]; ok {
				providers[i].MedicareServices = append(providers[i].MedicareServices, s)
			}
			return nil
		})
	}

	if !parallel {
		if err := loadTaxonomies(ctx); err != nil {
			return err
		}
		return loadServices(ctx)
	}

	// each goroutine only touches its own slice field
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loadTaxonomies(gctx) })
	g.Go(func() error { return loadServices(gctx) })
	return g.Wait()
}
