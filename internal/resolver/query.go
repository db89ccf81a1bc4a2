package resolver

import (
	"context"
	"fmt"
	"time"

	"ProviderAPI/internal/db"
	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/metrics"
	"ProviderAPI/internal/model"

	"github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("ProviderAPI/internal/resolver")

// runQuery executes sb on q and hands every row to scan.
// Driver and scan failures come back as *model.StorageError.
func runQuery(ctx context.Context, q db.Querier, op string, sb squirrel.Sqlizer, scan func(rows db.Rows) error) error {
	sqlStr, args, err := sb.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build sql: %w", op, err)
	}
	logger.Debug("sql", map[string]any{
		"op":   op,
		"sql":  sqlStr,
		"args": args,
	})

	ctx, span := tracer.Start(ctx, "db."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", q.Dialect().String()),
			attribute.String("db.statement", sqlStr),
		),
	)
	defer span.End()

	start := time.Now()
	err = func() error {
		rows, err := q.Query(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	}()
	metrics.ObserveQuery(op, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return model.NewStorageError(op, err)
	}
	return nil
}

func fetchProviders(ctx context.Context, q db.Querier, op string, sb squirrel.Sqlizer) ([]model.Provider, error) {
	providers := []model.Provider{}
	err := runQuery(ctx, q, op, sb, func(rows db.Rows) error {
		var p model.Provider
		if err := rows.Scan(model.ProviderScanTargets(&p)...); err != nil {
			return err
		}
		providers = append(providers, p)
		return nil
	})
	return providers, err
}

func fetchCount(ctx context.Context, q db.Querier, params model.SearchParams) (int64, error) {
	var total int64
	err := runQuery(ctx, q, "count", model.BuildCountQuery(q.Dialect(), params), func(rows db.Rows) error {
		return rows.Scan(&total)
	})
	return total, err
}

func fetchDistinct(ctx context.Context, q db.Querier, col model.FilterColumn) ([]string, error) {
	sb, err := model.BuildDistinctQuery(q.Dialect(), col)
	if err != nil {
		return nil, err
	}
	values := []string{}
	err = runQuery(ctx, q, "distinct_"+string(col), sb, func(rows db.Rows) error {
		var v *string
		if err := rows.Scan(&v); err != nil {
			return err
		}
		if v != nil && *v != "" {
			values = append(values, *v)
		}
		return nil
	})
	return values, err
}
