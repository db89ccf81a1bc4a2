package model

import "github.com/Masterminds/squirrel"

// BuildTaxonomiesQuery loads the taxonomies of all given providers in one statement.
func BuildTaxonomiesQuery(d Dialect, npis []string) squirrel.SelectBuilder {
	return d.Builder().
		Select(TaxonomyColumns...).
		From(TableTaxonomies).
		Where(squirrel.Eq{"npi": npis}).
		OrderBy("npi ASC", "id ASC")
}

// BuildMedicareServicesQuery loads the Medicare services of all given providers in one statement.
func BuildMedicareServicesQuery(d Dialect, npis []string) squirrel.SelectBuilder {
	return d.Builder().
		Select(MedicareServiceColumns...).
		From(TableMedicareServices).
		Where(squirrel.Eq{"npi": npis}).
		OrderBy("npi ASC", "id ASC")
}
