package ports

import (
	"context"

	"page-view-analytics/internal/pageviews/core/domain"
)

// PageViewPublisherPort publishes one event to the durable queue of its
// partition, declaring the queue first. Fire-and-forget: no broker-side
// confirmation is awaited beyond the send being accepted.
type PageViewPublisherPort interface {
	PublishPageView(ctx context.Context, view domain.PageView) error
}
