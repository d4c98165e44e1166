package dummy

import (
	"play-release-tools/src/application/publish"

	"github.com/streadway/amqp"
)

var _ publish.Publisher = &RabbitMQ{}

// RabbitMQ hands every published event to MessageChannel as a delivery of
// QueueName, numbered in publish order.
type RabbitMQ struct {
	QueueName      string
	Unavailable    bool
	Closed         bool
	MessageChannel chan amqp.Delivery

	deliveryTag uint64
}

func NewRabbitMQ() *RabbitMQ {
	return &RabbitMQ{
		QueueName:      "release-events",
		MessageChannel: make(chan amqp.Delivery, 16),
	}
}

func (r *RabbitMQ) Publish(msg amqp.Publishing) error {
	switch {
	case r.Closed:
		return AlreadyClosed
	case r.Unavailable:
		return NetworkFailure
	}

	r.deliveryTag++
	r.MessageChannel <- amqp.Delivery{
		RoutingKey:  r.QueueName,
		DeliveryTag: r.deliveryTag,
		Type:        msg.Type,
		Timestamp:   msg.Timestamp,
		Body:        msg.Body,
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.Closed {
		return AlreadyClosed
	}

	r.Closed = true
	return nil
}
