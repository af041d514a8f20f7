package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"page-view-analytics/internal/pageviews/core/domain"
	"page-view-analytics/internal/pageviews/core/ports"
)

// Broker is the slice of the shared rabbitmq client this adapter needs.
type Broker interface {
	DeclareQueue(name string) error
	Publish(ctx context.Context, queue string, body []byte) error
}

type PageViewPublisher struct {
	broker Broker
}

func NewPageViewPublisher(broker Broker) *PageViewPublisher {
	return &PageViewPublisher{broker: broker}
}

var _ ports.PageViewPublisherPort = (*PageViewPublisher)(nil)

// pageViewMessage is the wire schema shared with the aggregator worker.
type pageViewMessage struct {
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
	Views     int64  `json:"views"`
	Partition int    `json:"partition"`
	Shard     int    `json:"shard"`
}

func (p *PageViewPublisher) PublishPageView(ctx context.Context, view domain.PageView) error {
	queue := domain.QueueName(view.Partition)

	if err := p.broker.DeclareQueue(queue); err != nil {
		return err
	}

	body, err := json.Marshal(pageViewMessage{
		Page:      view.Page,
		Timestamp: view.Timestamp.UTC().Format(time.RFC3339),
		Views:     view.Views,
		Partition: view.Partition,
		Shard:     view.Shard,
	})
	if err != nil {
		return err
	}

	return p.broker.Publish(ctx, queue, body)
}
