package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWhereClauseEmptyParamsProducesNoCondition(t *testing.T) {
	for _, p := range []SearchParams{
		{},
		{Query: "   ", State: "\t", Specialty: ""},
	} {
		if where := BuildWhereClause(Postgres, p); where != nil {
			sql, _, _ := where.ToSql()
			t.Fatalf("expected no WHERE for %+v, got %s", p, sql)
		}
	}
}

func TestTextClauseORsFourColumnsCaseInsensitive(t *testing.T) {
	sql, args, err := textClause(Postgres, SearchParams{Query: "clinic"}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	for _, col := range []string{"provider_name", "first_name", "last_name", "organization_name"} {
		if !strings.Contains(sql, col+" ILIKE ? ESCAPE '\\'") {
			t.Fatalf("expected ILIKE on %s, got SQL: %s", col, sql)
		}
	}
	if strings.Count(sql, " OR ") != 3 {
		t.Fatalf("expected 4 OR-ed conditions, got SQL: %s", sql)
	}
	want := []any{"%clinic%", "%clinic%", "%clinic%", "%clinic%"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestTextClauseSQLiteUsesLowerLike(t *testing.T) {
	sql, _, err := textClause(SQLite, SearchParams{Query: "Clinic"}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Contains(sql, "ILIKE") {
		t.Fatalf("sqlite has no ILIKE, got SQL: %s", sql)
	}
	if !strings.Contains(sql, "LOWER(provider_name) LIKE LOWER(?) ESCAPE '\\'") {
		t.Fatalf("expected LOWER() LIKE LOWER(), got SQL: %s", sql)
	}
}

func TestTextClauseEscapesLikeMetacharacters(t *testing.T) {
	_, args, err := textClause(Postgres, SearchParams{Query: `50%_off\`}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if got, want := args[0], `%50\%\_off\\%`; got != want {
		t.Fatalf("pattern = %q, want %q", got, want)
	}
}

func TestStateClauseExactCaseInsensitive(t *testing.T) {
	sql, args, err := stateClause(Postgres, SearchParams{State: " ca "}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if sql != "LOWER(state) = LOWER(?)" {
		t.Fatalf("unexpected SQL: %s", sql)
	}
	if diff := cmp.Diff([]any{"ca"}, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecialtyClauseMatchesPrimaryTaxonomy(t *testing.T) {
	sql, args, err := specialtyClause(Postgres, SearchParams{Specialty: "207Q00000X"}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if sql != "LOWER(primary_taxonomy) = LOWER(?)" {
		t.Fatalf("unexpected SQL: %s", sql)
	}
	if diff := cmp.Diff([]any{"207Q00000X"}, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsentClausesAreOmitted(t *testing.T) {
	where := BuildWhereClause(Postgres, SearchParams{State: "TX"})
	sql, _, err := where.ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Contains(sql, "provider_name") || strings.Contains(sql, "primary_taxonomy") {
		t.Fatalf("only the state clause should be present, got SQL: %s", sql)
	}
}

func TestAllClausesAreANDed(t *testing.T) {
	where := BuildWhereClause(Postgres, SearchParams{Query: "acme", State: "CA", Specialty: "Cardiology"})
	sql, args, err := where.ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Count(sql, " AND ") != 2 {
		t.Fatalf("expected three AND-ed clauses, got SQL: %s", sql)
	}
	want := []any{"%acme%", "%acme%", "%acme%", "%acme%", "CA", "Cardiology"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}
