package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearchQueryUnfilteredOrderAndPaging(t *testing.T) {
	sb := BuildSearchQuery(Postgres, SearchParams{}, NormalizePage(0, 0, 10, 100))
	sql, args, err := sb.ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Contains(sql, "WHERE") {
		t.Fatalf("unexpected WHERE without filters: %s", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY provider_name ASC, npi ASC LIMIT 10") {
		t.Fatalf("unexpected order/limit: %s", sql)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSearchQueryOffsetFromPage(t *testing.T) {
	sb := BuildSearchQuery(Postgres, SearchParams{State: "CA"}, NormalizePage(3, 20, 10, 100))
	sql, args, err := sb.ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.Contains(sql, "WHERE (LOWER(state) = LOWER($1))") {
		t.Fatalf("expected dollar placeholder in state clause: %s", sql)
	}
	if !strings.HasSuffix(sql, "LIMIT 20 OFFSET 40") {
		t.Fatalf("unexpected paging: %s", sql)
	}
	if diff := cmp.Diff([]any{"CA"}, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchQuerySelectsAllProviderColumns(t *testing.T) {
	sql, _, err := BuildSearchQuery(SQLite, SearchParams{}, NormalizePage(1, 1, 10, 100)).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	want := "SELECT " + strings.Join(ProviderColumns, ", ") + " FROM providers"
	if !strings.HasPrefix(sql, want) {
		t.Fatalf("unexpected select list:\n got: %s\nwant prefix: %s", sql, want)
	}
	var p Provider
	if len(ProviderScanTargets(&p)) != len(ProviderColumns) {
		t.Fatal("provider scan targets out of sync with columns")
	}
}

func TestCountQuerySharesPredicateWithoutPaging(t *testing.T) {
	params := SearchParams{Query: "health", Specialty: "Cardiology"}
	page := NormalizePage(2, 5, 10, 100)

	countSQL, countArgs, err := BuildCountQuery(Postgres, params).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	pageSQL, pageArgs, err := BuildSearchQuery(Postgres, params, page).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	if !strings.HasPrefix(countSQL, "SELECT COUNT(*) FROM providers WHERE ") {
		t.Fatalf("unexpected count SQL: %s", countSQL)
	}
	if strings.Contains(countSQL, "LIMIT") || strings.Contains(countSQL, "ORDER BY") {
		t.Fatalf("count must ignore paging and order: %s", countSQL)
	}
	countWhere := countSQL[strings.Index(countSQL, "WHERE"):]
	if !strings.Contains(pageSQL, countWhere) {
		t.Fatalf("page and count predicates differ:\n page: %s\ncount: %s", pageSQL, countSQL)
	}
	if diff := cmp.Diff(countArgs, pageArgs); diff != "" {
		t.Fatalf("args differ (-count +page):\n%s", diff)
	}
}

func TestDetailQuery(t *testing.T) {
	sql, args, err := BuildDetailQuery(Postgres, "1234567890").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.HasSuffix(sql, "FROM providers WHERE npi = $1 LIMIT 1") {
		t.Fatalf("unexpected detail SQL: %s", sql)
	}
	if diff := cmp.Diff([]any{"1234567890"}, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestRelationQueriesAreBatched(t *testing.T) {
	npis := []string{"1", "2", "3"}
	for name, sb := range map[string]interface {
		ToSql() (string, []interface{}, error)
	}{
		"taxonomies": BuildTaxonomiesQuery(Postgres, npis),
		"medicare":   BuildMedicareServicesQuery(Postgres, npis),
	} {
		sql, args, err := sb.ToSql()
		if err != nil {
			t.Fatalf("%s ToSql: %v", name, err)
		}
		if !strings.Contains(sql, "WHERE npi IN ($1,$2,$3)") {
			t.Fatalf("%s: expected one IN query, got %s", name, sql)
		}
		if !strings.HasSuffix(sql, "ORDER BY npi ASC, id ASC") {
			t.Fatalf("%s: unexpected order: %s", name, sql)
		}
		if diff := cmp.Diff([]any{"1", "2", "3"}, args); diff != "" {
			t.Fatalf("%s args mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestDistinctQueryExcludesNullAndEmpty(t *testing.T) {
	sb, err := BuildDistinctQuery(SQLite, FilterSpecialty)
	if err != nil {
		t.Fatalf("BuildDistinctQuery: %v", err)
	}
	sql, _, err := sb.ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	want := "SELECT DISTINCT primary_taxonomy FROM providers WHERE primary_taxonomy IS NOT NULL AND TRIM(primary_taxonomy) <> '' ORDER BY primary_taxonomy ASC"
	if sql != want {
		t.Fatalf("unexpected SQL:\n got: %s\nwant: %s", sql, want)
	}
}

func TestDistinctQueryRejectsUnknownColumn(t *testing.T) {
	if _, err := BuildDistinctQuery(Postgres, FilterColumn("email")); err == nil {
		t.Fatal("expected error for non-filterable column")
	}
}
