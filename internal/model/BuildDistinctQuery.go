package model

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// BuildDistinctQuery lists the distinct non-empty values of a filter column in ascending order.
func BuildDistinctQuery(d Dialect, col FilterColumn) (squirrel.SelectBuilder, error) {
	sb := d.Builder().Select(string(col))
	if !col.Valid() {
		return sb, fmt.Errorf("column %q is not filterable", col)
	}
	column := string(col)
	return sb.
		Distinct().
		From(TableProviders).
		Where(squirrel.NotEq{column: nil}).
		Where(squirrel.Expr("TRIM(" + column + ") <> ''")).
		OrderBy(column + " ASC"), nil
}
