package rabbitmq

import (
	"context"
	"errors"
	"inventory/internal/core/domain/logging"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection is an AMQP connection which redials the broker
// whenever the underlying connection is lost.
type Connection struct {
	url   string
	log   logging.Logger
	delay time.Duration

	mu     sync.RWMutex
	conn   *amqp.Connection
	closed atomic.Bool
}

func Dial(url string, log logging.Logger, reconnectDelay time.Duration) (*Connection, error) {
	if log == nil {
		return nil, errors.New("log argument must not be nil")
	}
	if reconnectDelay <= 0 {
		return nil, errors.New("reconnect delay must be positive")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{url: url, log: log, delay: reconnectDelay, conn: conn}
	go connection.watch()
	return connection, nil
}

func (c *Connection) current() *amqp.Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}

func (c *Connection) watch() {
	ctx := context.Background()
	for {
		reason, ok := <-c.current().NotifyClose(make(chan *amqp.Error, 1))
		if !ok || c.closed.Load() {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(ctx, "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		conn, ok := retry(c.log, c.delay, "RabbitMQ reconnect", c.closed.Load, func() (*amqp.Connection, error) {
			return amqp.Dial(c.url)
		})
		if !ok {
			return
		}
		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
	}
}

// Close closes the connection and stops reconnecting.
func (c *Connection) Close() error {
	c.closed.Store(true)
	return c.current().Close()
}

// Channel opens a channel which is reopened after a failure
// until Close is called on it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.current().Channel()
	if err != nil {
		return nil, err
	}
	channel := &Channel{conn: c, ch: ch}
	go channel.watch()
	return channel, nil
}

type Channel struct {
	conn *Connection

	mu     sync.RWMutex
	ch     *amqp.Channel
	closed atomic.Bool
}

func (ch *Channel) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *Channel) watch() {
	log := ch.conn.log
	for {
		reason, ok := <-ch.current().NotifyClose(make(chan *amqp.Error, 1))
		if !ok || ch.closed.Load() {
			return
		}

		log.Warning(context.Background(), "RabbitMQ channel lost.", logging.Entry("reason", reason.Error()))
		next, ok := retry(log, ch.conn.delay, "RabbitMQ channel reopen", ch.closed.Load, func() (*amqp.Channel, error) {
			return ch.conn.current().Channel()
		})
		if !ok {
			return
		}
		ch.mu.Lock()
		ch.ch = next
		ch.mu.Unlock()
	}
}

func (ch *Channel) IsClosed() bool {
	return ch.closed.Load()
}

func (ch *Channel) Close() error {
	if !ch.closed.CompareAndSwap(false, true) {
		return amqp.ErrClosed
	}
	return ch.current().Close()
}

func (ch *Channel) QueueDeclare(
	name string,
	durable, autoDelete, exclusive, noWait bool,
	args amqp.Table,
) (amqp.Queue, error) {
	return ch.current().QueueDeclare(name, durable, autoDelete, exclusive, noWait, args)
}

// Consume returns a stream of deliveries which survives channel
// reopening, it is closed once the channel is closed with Close.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	log := ch.conn.log
	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		for !ch.closed.Load() {
			d, err := ch.current().Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				log.Error(context.Background(), "RabbitMQ consume failed.", logging.Entry("err", err))
				time.Sleep(ch.conn.delay)
				continue
			}
			for msg := range d {
				deliveries <- msg
			}
			// Give watch a chance to swap the channel.
			time.Sleep(ch.conn.delay)
		}
		log.Info(context.Background(), "RabbitMQ channel closed, consuming stopped.", logging.Entry("queue", queue))
	}()

	return deliveries, nil
}

// retry calls fn every delay until it succeeds or stopped reports true.
func retry[T any](
	log logging.Logger,
	delay time.Duration,
	operation string,
	stopped func() bool,
	fn func() (T, error),
) (result T, ok bool) {
	ctx := context.Background()
	for {
		time.Sleep(delay)
		if stopped() {
			return result, false
		}
		v, err := fn()
		if err == nil {
			log.Info(ctx, operation+" succeeded.")
			return v, true
		}
		log.Warning(ctx, operation+" failed.", logging.Entry("err", err))
	}
}
