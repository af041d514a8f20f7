package postgres

import (
	"context"
	"fmt"
	"strings"

	"page-view-analytics/internal/aggregator/core/domain"
	"page-view-analytics/internal/aggregator/core/ports"
)

type PageViewRepository struct {
	db DB
}

func NewPageViewRepository(db DB) *PageViewRepository {
	return &PageViewRepository{db: db}
}

var _ ports.PageViewWriterPort = (*PageViewRepository)(nil)

// UpsertPageViews writes all rows in a single additive upsert statement:
// conflicting (page, view_hour, shard_key) rows get the incoming views
// added on top. One statement keeps the batch atomic, so a failure can be
// retried via redelivery without double-applying rows that did succeed.
func (r *PageViewRepository) UpsertPageViews(ctx context.Context, rows []domain.PageViewRow) error {
	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*5)

	for i, row := range rows {
		base := i * 5
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5))
		args = append(args, row.Page, row.ViewHour, row.Views, row.Partition, row.Shard)
	}

	query := `
INSERT INTO page_views (page, view_hour, views, partition, shard_key)
VALUES ` + strings.Join(placeholders, ", ") + `
ON CONFLICT (page, view_hour, shard_key)
DO UPDATE SET views = page_views.views + EXCLUDED.views`

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert page views: %w", err)
	}

	return nil
}
