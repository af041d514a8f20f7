package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"page-view-analytics/internal/aggregator/core/ports"
)

// Broker is the slice of the shared rabbitmq client this adapter needs.
type Broker interface {
	DeclareQueue(name string) error
	Consume(ctx context.Context, queue string) (<-chan amqp.Delivery, error)
	Ack(tag uint64) error
	Nack(tag uint64, requeue bool) error
}

type QueueConsumer struct {
	broker Broker
}

func NewQueueConsumer(broker Broker) *QueueConsumer {
	return &QueueConsumer{broker: broker}
}

var _ ports.QueueConsumerPort = (*QueueConsumer)(nil)

func (c *QueueConsumer) Consume(ctx context.Context, queue string) (<-chan ports.Delivery, error) {
	if err := c.broker.DeclareQueue(queue); err != nil {
		return nil, err
	}

	in, err := c.broker.Consume(ctx, queue)
	if err != nil {
		return nil, err
	}

	out := make(chan ports.Delivery)
	go func() {
		defer close(out)
		for d := range in {
			select {
			case out <- ports.Delivery{Tag: d.DeliveryTag, Body: d.Body}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (c *QueueConsumer) Ack(tag uint64) error {
	return c.broker.Ack(tag)
}

func (c *QueueConsumer) Nack(tag uint64, requeue bool) error {
	return c.broker.Nack(tag, requeue)
}
