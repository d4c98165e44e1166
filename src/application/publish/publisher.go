package publish

import (
	"play-release-tools/src/lib/cerr"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ Publisher = &RabbitMQPublisher{}
var _ Publisher = NoopPublisher{}

//counterfeiter:generate . Publisher
type Publisher interface {
	Publish(msg amqp.Publishing) error
	Close() error
}

func NewRabbitMQPublisher(rabbitURL string, queueName string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to connect to rabbit")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, cerr.Wrap(err).Error("Failed to create rabbit channel")
	}

	queue, err := channel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, cerr.Field("queue_name", queueName).
			Wrap(err).Error("Failed to declare queue")
	}

	return &RabbitMQPublisher{
		conn:      conn,
		channel:   channel,
		queueName: queue.Name,
	}, nil
}

type RabbitMQPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

func (r *RabbitMQPublisher) Publish(msg amqp.Publishing) error {
	msg.ContentType = "application/json"
	msg.DeliveryMode = amqp.Persistent
	return r.channel.Publish("", r.queueName, true, false, msg)
}

func (r *RabbitMQPublisher) Close() error {
	channelErr := r.channel.Close()
	connErr := r.conn.Close()
	if channelErr != nil {
		return cerr.Wrap(channelErr).Error("Failed to close rabbit channel")
	}
	if connErr != nil {
		return cerr.Wrap(connErr).Error("Failed to close rabbit connection")
	}

	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(amqp.Publishing) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
