package model

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// searchClause maps search parameters to one optional condition.
// A clause returns nil when its parameter is absent, so it never narrows the result.
type searchClause func(d Dialect, p SearchParams) squirrel.Sqlizer

// textSearchColumns are OR-ed together for the free-text query.
var textSearchColumns = []string{
	"provider_name",
	"first_name",
	"last_name",
	"organization_name",
}

var searchClauses = []searchClause{
	textClause,
	stateClause,
	specialtyClause,
}

func textClause(d Dialect, p SearchParams) squirrel.Sqlizer {
	// blank means absent, otherwise the raw term is matched so surrounding spaces count
	term := p.Query
	if strings.TrimSpace(term) == "" {
		return nil
	}
	parts := make(squirrel.Or, 0, len(textSearchColumns))
	for _, col := range textSearchColumns {
		parts = append(parts, d.containsFold(col, term))
	}
	return parts
}

func stateClause(d Dialect, p SearchParams) squirrel.Sqlizer {
	state := strings.TrimSpace(p.State)
	if state == "" {
		return nil
	}
	return d.equalFold("state", state)
}

func specialtyClause(d Dialect, p SearchParams) squirrel.Sqlizer {
	specialty := strings.TrimSpace(p.Specialty)
	if specialty == "" {
		return nil
	}
	return d.equalFold("primary_taxonomy", specialty)
}

// BuildWhereClause ANDs every non-empty clause. It returns nil when no filter is set.
func BuildWhereClause(d Dialect, p SearchParams) squirrel.Sqlizer {
	var exprs squirrel.And
	for _, clause := range searchClauses {
		if cond := clause(d, p); cond != nil {
			exprs = append(exprs, cond)
		}
	}
	if len(exprs) == 0 {
		return nil
	}
	return exprs
}
