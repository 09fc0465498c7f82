package productsold

import (
	"context"
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/services"
	recordproductsale "inventory/internal/core/services/record_product_sale"
	"inventory/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Channel interface {
	Consume(
		queue, consumer string,
		autoAck, exclusive, noLocal, noWait bool,
		args amqp091.Table,
	) (<-chan amqp091.Delivery, error)
}

type Consumer struct {
	log     logging.Logger
	channel Channel
	queue   string
	service services.Service[recordproductsale.Input, recordproductsale.Result]
}

func New(
	log logging.Logger,
	channel Channel,
	queue string,
	service services.Service[recordproductsale.Input, recordproductsale.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.Handle(context.Background(), delivery)
		}
	}()
	return nil
}

// Handle records a single sale message. Every message is acknowledged:
// malformed or unprocessable sales are only logged.
func (c *Consumer) Handle(ctx context.Context, delivery amqp091.Delivery) {
	defer c.Ack(ctx, delivery)

	sale := &schema.ProductSale{}
	if err := sale.Unmarshal(delivery.Body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal product sale.",
			logging.Entry("err", err),
			logging.Entry("body", string(delivery.Body)),
		)
		return
	}

	c.log.Info(ctx, "Got product sale.", logging.Entry("sale", sale))
	_, err := c.service.Run(
		ctx,
		recordproductsale.Input{ProductID: product.ID(sale.ProductID), Quantity: sale.Quantity},
	)
	switch {
	case err == nil:
	case errors.Is(err, product.ErrProductDoesNotExist),
		errors.Is(err, product.ErrNotEnoughQuantity),
		errors.Is(err, product.ErrAmountSoldOverflow):
		c.log.Warning(ctx, "Product sale rejected.", logging.Entry("sale", sale), logging.Entry("err", err))
	default:
		c.log.Error(
			ctx,
			"Could not record product sale, service returned an error.",
			logging.Entry("sale", sale),
			logging.Entry("err", err),
		)
	}
}

func (c *Consumer) Ack(ctx context.Context, delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(ctx, "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
