package consumers

import (
	"context"
	"inventory/internal/app/deps"
	"inventory/internal/app/services"
	dl "inventory/internal/core/domain/logging"
	productsold "inventory/internal/rabbitmq/consumers/product_sold"
)

func initProductSoldConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqProductSalesQueue
	if _, err := rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	productSoldConsumer := productsold.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.RecordProductSale,
	)
	if err = productSoldConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down consumer.", dl.Entry("queue", queue))
		rabbitmqChannel.Close()
	}
}

// InitConsumers starts the RabbitMQ consumers, nothing is started when
// RabbitMQ is not configured.
func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	if deps.Rabbitmq == nil {
		return func() {}
	}
	shutdownProductSoldConsumer := initProductSoldConsumer(deps, services)

	return func() {
		shutdownProductSoldConsumer()
	}
}
