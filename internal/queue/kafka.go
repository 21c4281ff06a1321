package queue

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/sirupsen/logrus"
)

var _ AuditQueue = (*KafkaQueue)(nil)

// KafkaQueue publishes audit events to a kafka topic, keyed by owner so
// one owner's trail stays ordered within a partition.
type KafkaQueue struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaQueue(brokers, topic string) (*KafkaQueue, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
	})
	if err != nil {
		return nil, err
	}

	// drain delivery reports so the producer channel never fills up
	go func() {
		for e := range producer.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				logrus.Errorf("audit event delivery failed: %v", m.TopicPartition.Error)
			}
		}
	}()

	return &KafkaQueue{producer: producer, topic: topic}, nil
}

func (q *KafkaQueue) Publish(ctx context.Context, event *AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return q.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &q.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.OwnerID),
		Value:          data,
	}, nil)
}

func (q *KafkaQueue) Close() {
	q.producer.Flush(5000)
	q.producer.Close()
}
