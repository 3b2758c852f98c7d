package composer

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rankreel/config"
	sharedkafka "rankreel/shared/kafka"
	"rankreel/types"
)

// RecordMessage is one compose request arriving on the records topic.
// The record payload is kept raw so the engine's permissive decoder is
// the only place external field shapes are interpreted.
type RecordMessage struct {
	JobID  string          `json:"job_id,omitempty"`
	Record json.RawMessage `json:"record"`
}

// NewRecordConsumer wires the shared Kafka consumer to the composer.
// Failed compose jobs are marked anyway: a record that fails validation
// will fail identically on every retry, and its failure has already
// been reported through the status path.
func NewRecordConsumer(cfg config.Config, c *Composer) (*sharedkafka.Consumer, error) {
	handler := &sharedkafka.TypedMessageHandler[RecordMessage]{
		Validate: func(msg *RecordMessage) bool {
			if len(msg.Record) == 0 {
				logrus.Warn("skipping record message with empty record payload")
				return false
			}
			return true
		},
		Process: func(ctx context.Context, msg *RecordMessage) error {
			jobID := msg.JobID
			if jobID == "" {
				jobID = uuid.NewString()
			}

			if _, err := c.Compose(ctx, jobID, msg.Record); err != nil {
				// Deterministic failure: retrying the same bytes cannot
				// succeed, so swallow after the status report.
				logrus.WithField("job_id", jobID).WithError(err).Error("record compose failed")
			}
			return nil
		},
		AlwaysMark: true,
	}

	return sharedkafka.NewConsumer(sharedkafka.ConsumerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.RecordsTopic,
		GroupID: cfg.ConsumerGroupID,
		Handler: handler,
	})
}

// KafkaStatusReporter publishes job updates to the status topic, keyed
// by job ID so per-job updates stay ordered.
type KafkaStatusReporter struct {
	producer *sharedkafka.Producer
}

// NewKafkaStatusReporter connects a producer for the status topic.
func NewKafkaStatusReporter(cfg config.Config) (*KafkaStatusReporter, error) {
	producer, err := sharedkafka.NewProducer(cfg.KafkaBrokers, cfg.StatusTopic)
	if err != nil {
		return nil, err
	}
	return &KafkaStatusReporter{producer: producer}, nil
}

// Report implements StatusReporter.
func (r *KafkaStatusReporter) Report(_ context.Context, update types.JobUpdate) error {
	return r.producer.SendJSON(update.JobID, update)
}

// Close releases the underlying producer.
func (r *KafkaStatusReporter) Close() error {
	return r.producer.Close()
}
