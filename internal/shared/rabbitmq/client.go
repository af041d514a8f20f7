package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

var ErrNotConnected = errors.New("rabbitmq channel not initialized")

// Client owns one connection and one logical channel. The channel is safe
// for concurrent publishes, so a single Client is shared per process.
type Client struct {
	log  *logrus.Entry
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewClient(log *logrus.Entry) *Client {
	return &Client{log: log}
}

func (c *Client) Connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	c.conn = conn
	c.ch = ch
	c.log.WithField("url", url).Info("rabbitmq connected")
	return nil
}

// DeclareQueue declares a durable queue. Declaring an existing queue with
// the same attributes is a no-op on the broker side.
func (c *Client) DeclareQueue(name string) error {
	if c.ch == nil {
		return ErrNotConnected
	}
	_, err := c.ch.QueueDeclare(name, true, false, false, false, nil)
	return err
}

// Publish sends one persistent JSON message. The broker accepting the send
// is the only confirmation awaited.
func (c *Client) Publish(ctx context.Context, queue string, body []byte) error {
	if c.ch == nil {
		return ErrNotConnected
	}
	return c.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Body:         body,
	})
}

func (c *Client) Consume(ctx context.Context, queue string) (<-chan amqp.Delivery, error) {
	if c.ch == nil {
		return nil, ErrNotConnected
	}
	return c.ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
}

func (c *Client) Ack(tag uint64) error {
	if c.ch == nil {
		return ErrNotConnected
	}
	return c.ch.Ack(tag, false)
}

func (c *Client) Nack(tag uint64, requeue bool) error {
	if c.ch == nil {
		return ErrNotConnected
	}
	return c.ch.Nack(tag, false, requeue)
}

func (c *Client) Close() {
	if c.ch != nil {
		if err := c.ch.Close(); err != nil {
			c.log.WithError(err).Warn("error closing rabbitmq channel")
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Warn("error closing rabbitmq connection")
		}
	}
	c.log.Info("rabbitmq connection closed")
}
