package model

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Dialect selects the SQL flavour emitted by the query builders.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	default:
		return "postgres"
	}
}

func (d Dialect) Placeholder() squirrel.PlaceholderFormat {
	if d == SQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

// Builder returns a statement builder bound to the dialect's placeholders.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns free text into a LIKE pattern that matches it literally
// anywhere in the column.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// containsFold is a case-insensitive substring match on column.
func (d Dialect) containsFold(column, term string) squirrel.Sqlizer {
	if d == SQLite {
		return squirrel.Expr("LOWER("+column+") LIKE LOWER(?) ESCAPE '\\'", ContainsPattern(term))
	}
	return squirrel.Expr(column+" ILIKE ? ESCAPE '\\'", ContainsPattern(term))
}

// equalFold is a case-insensitive exact match on column.
func (d Dialect) equalFold(column, value string) squirrel.Sqlizer {
	return squirrel.Expr("LOWER("+column+") = LOWER(?)", value)
}
