package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"storefront-service/models"
)

// OrderPlacedEvent is the message sent to the fulfillment queue when an
// order has been persisted. The full order lives in the order store;
// the event only carries what fulfillment needs to start picking.
type OrderPlacedEvent struct {
	OrderID   int    `json:"order_id"`
	Total     string `json:"total"`
	ItemCount int    `json:"item_count"`
}

// Publisher sends order-placed events using channels from a pool.
type Publisher struct {
	pool      *ChannelPool
	queueName string
}

func NewPublisher(pool *ChannelPool, queueName string) *Publisher {
	return &Publisher{
		pool:      pool,
		queueName: queueName,
	}
}

// PublishOrderPlaced announces a persisted order to the fulfillment
// queue.
func (p *Publisher) PublishOrderPlaced(order models.Order) error {
	ch, err := p.pool.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.ReturnChannel(ch)

	event := OrderPlacedEvent{
		OrderID:   order.OrderID,
		Total:     order.Total.String(),
		ItemCount: len(order.Items),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	log.Printf("Published order %d to fulfillment queue", order.OrderID)
	return nil
}
