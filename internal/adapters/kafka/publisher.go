package kafka

import (
	"context"
	"encoding/json"

	"devconnect-service/internal/request"

	"github.com/IBM/sarama"
)

// EventPublisher writes connection lifecycle events to a Kafka topic, keyed by
// request id so events for one request land on one partition in order.
type EventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventPublisher(producer sarama.SyncProducer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

func (p *EventPublisher) Publish(ctx context.Context, ev request.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.RequestID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *EventPublisher) Close() error {
	return p.producer.Close()
}
