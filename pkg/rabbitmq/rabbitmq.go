package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// QuotationQueue is the queue that finalized quotations are handed to for
// document generation and email dispatch.
const QuotationQueue = "quotation_queue"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient creates a new RabbitMQ client. It connects to RabbitMQ, opens a
// channel and declares the quotation queue upfront.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		QuotationQueue, // name
		true,           // durable (persists messages across broker restarts)
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", QuotationQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s declared.", QuotationQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a raw message body to the given exchange and routing key.
// Messages are marked persistent.
func (c *Client) Publish(exchange, routingKey string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err := c.channel.Publish(
		exchange,   // exchange: empty string means the default exchange
		routingKey, // routing key: the queue name on the default exchange
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishQuotationGenerated publishes a quotation-generated event to the
// quotation queue. The payload is marshaled to JSON.
func (c *Client) PublishQuotationGenerated(event map[string]interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal quotation event to JSON: %w", err)
	}

	if err := c.Publish("", QuotationQueue, body); err != nil {
		return err
	}

	log.Printf(" [x] Sent quotation event: %s", body)
	return nil
}

// ConsumeQuotationEvents registers a consumer on the quotation queue and
// processes deliveries with the given handler in a background goroutine.
// A handler error nacks the delivery for redelivery; success acks it.
func (c *Client) ConsumeQuotationEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		QuotationQueue, // name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack: manual acknowledgement after processing
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for quotation events.")

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				// Requeue so a transient dispatch failure is retried.
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
