package ports

import "context"

// Delivery is one raw message off a partition queue, still unacknowledged.
type Delivery struct {
	Tag  uint64
	Body []byte
}

// QueueConsumerPort is the broker surface the aggregator depends on:
// declare-and-consume plus acknowledge / negative-acknowledge.
type QueueConsumerPort interface {
	// Consume declares the queue and returns its delivery stream. The
	// channel closes when the underlying consumer stops.
	Consume(ctx context.Context, queue string) (<-chan Delivery, error)
	Ack(tag uint64) error
	Nack(tag uint64, requeue bool) error
}
