package notifier

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes events to a single durable RabbitMQ queue. A channel
// is opened per publish; channels are cheap and must not be shared between
// goroutines.
type AMQPNotifier struct {
	conn  *amqp.Connection
	queue string
}

func NewAMQPNotifier(url, queue string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()

	// Idempotent declare. Durable so events survive broker restarts.
	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &AMQPNotifier{conn: conn, queue: queue}, nil
}

func (n *AMQPNotifier) Publish(ctx context.Context, message string) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.PublishWithContext(
		ctx,
		"",      // default exchange
		n.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "text/plain",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         []byte(message),
		},
	)
}

func (n *AMQPNotifier) Close() error {
	return n.conn.Close()
}
