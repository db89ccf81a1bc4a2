package model

import "github.com/Masterminds/squirrel"

// searchOrder sorts by display name; npi breaks ties so pages stay stable between calls.
var searchOrder = []string{"provider_name ASC", "npi ASC"}

// BuildSearchQuery builds the page query of a provider search.
func BuildSearchQuery(d Dialect, p SearchParams, page Page) squirrel.SelectBuilder {
	sb := d.Builder().
		Select(ProviderColumns...).
		From(TableProviders)

	if where := BuildWhereClause(d, p); where != nil {
		sb = sb.Where(where)
	}

	sb = sb.OrderBy(searchOrder...)

	if page.Limit > 0 {
		sb = sb.Limit(uint64(page.Limit))
	}
	if page.Offset > 0 {
		sb = sb.Offset(page.Offset)
	}
	return sb
}

// BuildCountQuery counts every provider matching the same predicate as BuildSearchQuery.
func BuildCountQuery(d Dialect, p SearchParams) squirrel.SelectBuilder {
	sb := d.Builder().
		Select("COUNT(*)").
		From(TableProviders)

	if where := BuildWhereClause(d, p); where != nil {
		sb = sb.Where(where)
	}
	return sb
}

// BuildDetailQuery selects a single provider by NPI.
func BuildDetailQuery(d Dialect, npi string) squirrel.SelectBuilder {
	return d.Builder().
		Select(ProviderColumns...).
		From(TableProviders).
		Where(squirrel.Eq{"npi": npi}).
		Limit(1)
}
