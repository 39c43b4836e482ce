package kafka

import (
	"context"
	"encoding/json"

	kafka "github.com/segmentio/kafka-go"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
)

// Publisher emits an event per persisted order for downstream consumers
// (notification tooling, analytics). Delivery is best effort.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Publisher{writer: w}
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, ord models.Order) error {
	payload, err := json.Marshal(ord)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ord.Phone),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
