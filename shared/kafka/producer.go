package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

// Producer publishes JSON messages to a single topic. Used for status
// fan-out, where delivery order per job matters more than throughput,
// so it is a synchronous producer keyed by job ID.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logrus.Entry
}

// NewProducer connects a sync producer for the topic.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	sc := sarama.NewConfig()
	sc.Version = sarama.V3_6_0_0
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Retry.Max = 3
	sc.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    topic,
		log: logrus.WithFields(logrus.Fields{
			"component": "kafka-producer",
			"topic":     topic,
		}),
	}, nil
}

// SendJSON marshals v and publishes it under the given key. Messages
// with the same key stay on one partition, preserving per-job order.
func (p *Producer) SendJSON(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal kafka message: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("published message")

	return nil
}

// Close releases the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
