package postgres

import (
	"context"
	"time"

	"page-view-analytics/internal/report/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ReportRepository struct {
	db DB
}

func NewReportRepository(db DB) *ReportRepository {
	return &ReportRepository{db: db}
}

var _ ports.ReportReaderPort = (*ReportRepository)(nil)

const hourlyViewsSQL = `
SELECT view_hour, SUM(views) AS views
FROM page_views
WHERE page = $1 AND view_hour BETWEEN $2 AND $3
GROUP BY view_hour`

// HourlyViews sums stored views per hour across all shards of the page.
func (r *ReportRepository) HourlyViews(ctx context.Context, page string, start, end time.Time) (map[int64]int64, error) {
	rows, err := r.db.QueryContext(ctx, hourlyViewsSQL, page, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make(map[int64]int64)
	for rows.Next() {
		var hour time.Time
		var count int64
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, err
		}
		views[hour.UTC().Unix()] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
