package rabbitmq_consumer

import (
	"context"
	"fmt"
	"sync"

	"github.com/numanharith/propertyhub-frontend/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageHandler обрабатывает одно сообщение. nil - ack, ошибка - nack без возврата в очередь.
type MessageHandler func(ctx context.Context, delivery amqp.Delivery) error

// ConsumerConfig описывает очередь, ее привязку и QoS.
type ConsumerConfig struct {
	rabbitmq_common.Config
	// QueueName пустой - сервер сгенерирует имя, очередь эксклюзивная и удаляется вместе с потребителем.
	QueueName    string
	DurableQueue bool

	ExchangeName string
	ExchangeType string
	RoutingKeys  []string

	PrefetchCount int
	ConsumerTag   string

	Logger rabbitmq_common.Logger
}

// Consumer читает очередь и вызывает обработчик в отдельной горутине на сообщение.
type Consumer struct {
	config    ConsumerConfig
	handler   MessageHandler
	channel   *amqp.Channel
	conn      *amqp.Connection
	queueName string
	wg        sync.WaitGroup

	Logger rabbitmq_common.Logger
}

func NewConsumer(cfg ConsumerConfig, handler MessageHandler, connManager *rabbitmq_common.ConnectionManager) (*Consumer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("consumer: invalid base config: %w", err)
	}
	if handler == nil {
		return nil, fmt.Errorf("consumer: message handler is required")
	}
	if cfg.ExchangeName != "" && cfg.ExchangeType == "" {
		return nil, fmt.Errorf("consumer: exchange type is required for exchange '%s'", cfg.ExchangeName)
	}

	logger := rabbitmq_common.OrDiscard(cfg.Logger)

	conn, ch, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("consumer: failed to get channel from manager: %w", err)
	}

	c := &Consumer{config: cfg, handler: handler, channel: ch, conn: conn, Logger: logger}
	if err := c.setup(); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return c, nil
}

func (c *Consumer) setup() error {
	if c.config.PrefetchCount > 0 {
		if err := c.channel.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("consumer: failed to set QoS: %w", err)
		}
	}

	temporary := c.config.QueueName == ""
	q, err := c.channel.QueueDeclare(
		c.config.QueueName,
		c.config.DurableQueue && !temporary,
		temporary, // auto-delete
		temporary, // exclusive
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to declare queue '%s': %w", c.config.QueueName, err)
	}
	c.queueName = q.Name

	if c.config.ExchangeName == "" {
		return nil
	}

	err = c.channel.ExchangeDeclare(c.config.ExchangeName, c.config.ExchangeType, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consumer: failed to declare exchange '%s': %w", c.config.ExchangeName, err)
	}
	for _, key := range c.config.RoutingKeys {
		c.Logger.Debug("Binding queue", "queue", c.queueName, "exchange", c.config.ExchangeName, "routing_key", key)
		if err := c.channel.QueueBind(c.queueName, key, c.config.ExchangeName, false, nil); err != nil {
			return fmt.Errorf("consumer: failed to bind queue '%s' with key '%s': %w", c.queueName, key, err)
		}
	}
	return nil
}

// StartConsuming блокируется до отмены ctx или закрытия соединения.
func (c *Consumer) StartConsuming(ctx context.Context) error {
	msgs, err := c.channel.Consume(c.queueName, c.config.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consumer: failed to register on queue '%s': %w", c.queueName, err)
	}

	notifyClose := c.conn.NotifyClose(make(chan *amqp.Error, 1))
	c.Logger.Info("Waiting for messages", "queue_name", c.queueName)

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Context cancelled, consumer stops", "queue_name", c.queueName)
			return nil

		case amqpErr := <-notifyClose:
			if amqpErr == nil {
				return nil
			}
			c.Logger.Error(amqpErr, "Connection closed for consumer", "queue_name", c.queueName)
			return amqpErr

		case d, ok := <-msgs:
			if !ok {
				c.Logger.Warn("Deliveries channel closed", "queue_name", c.queueName)
				return nil
			}
			c.wg.Add(1)
			go func(delivery amqp.Delivery) {
				defer c.wg.Done()
				if err := c.handler(ctx, delivery); err != nil {
					c.Logger.Error(err, "Handler error, message dropped", "delivery_tag", delivery.DeliveryTag)
					_ = delivery.Nack(false, false)
					return
				}
				_ = delivery.Ack(false)
			}(d)
		}
	}
}

// Close ждет завершения обработчиков и закрывает канал
func (c *Consumer) Close() error {
	c.wg.Wait()
	if c.channel == nil || c.channel.IsClosed() {
		return nil
	}
	return c.channel.Close()
}
