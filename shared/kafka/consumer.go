package kafka

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

// MessageHandler processes one consumed message. Returning shouldMark
// false (or an error) leaves the offset unmarked so the message is
// retried on the next session.
type MessageHandler interface {
	HandleMessage(ctx context.Context, message []byte) (shouldMark bool, err error)
}

// ConsumerConfig holds consumer-group wiring.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	Handler MessageHandler
}

// Consumer wraps a sarama consumer group with pluggable message
// handling.
type Consumer struct {
	group   sarama.ConsumerGroup
	handler MessageHandler
	topic   string
	groupID string
	ready   chan struct{}
	log     *logrus.Entry
}

// NewConsumer creates a consumer group member for the given topic.
func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	sc := sarama.NewConfig()
	sc.Version = sarama.V3_6_0_0
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	sc.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		handler: cfg.Handler,
		topic:   cfg.Topic,
		groupID: cfg.GroupID,
		ready:   make(chan struct{}),
		log: logrus.WithFields(logrus.Fields{
			"component": "kafka-consumer",
			"topic":     cfg.Topic,
			"group":     cfg.GroupID,
		}),
	}, nil
}

// Start begins consuming and returns once the first session is ready.
func (c *Consumer) Start(ctx context.Context) error {
	h := &groupHandler{consumer: c, ready: c.ready}

	go func() {
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
				if err == context.Canceled {
					return
				}
				c.log.WithError(err).Error("consume loop error")
			}
			if ctx.Err() != nil {
				return
			}
			h.ready = make(chan struct{})
		}
	}()

	<-c.ready
	c.log.Info("kafka consumer started")

	go func() {
		for err := range c.group.Errors() {
			c.log.WithError(err).Error("consumer group error")
		}
	}()

	return nil
}

// Close shuts the consumer group down.
func (c *Consumer) Close() error {
	c.log.Info("closing kafka consumer")
	return c.group.Close()
}

type groupHandler struct {
	consumer *Consumer
	ready    chan struct{}
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.ready)
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			log := h.consumer.log.WithFields(logrus.Fields{
				"partition": message.Partition,
				"offset":    message.Offset,
			})
			log.Debug("received message")

			shouldMark, err := h.consumer.handler.HandleMessage(session.Context(), message.Value)
			if err != nil {
				log.WithError(err).Error("message handling failed")
			}
			if shouldMark {
				session.MarkMessage(message, "")
			}

		case <-session.Context().Done():
			return nil
		}
	}
}

// TypedMessageHandler decodes JSON messages into T before handing them
// to Validate and Process. Undecodable messages are marked (skipped)
// when AlwaysMark is set; processing errors never mark, so the message
// is retried.
type TypedMessageHandler[T any] struct {
	Validate   func(msg *T) bool
	Process    func(ctx context.Context, msg *T) error
	AlwaysMark bool
}

// HandleMessage implements MessageHandler.
func (h *TypedMessageHandler[T]) HandleMessage(ctx context.Context, message []byte) (bool, error) {
	var msg T
	if err := json.Unmarshal(message, &msg); err != nil {
		logrus.WithError(err).Warn("skipping undecodable kafka message")
		return h.AlwaysMark, nil
	}

	if h.Validate != nil && !h.Validate(&msg) {
		return h.AlwaysMark, nil
	}

	if err := h.Process(ctx, &msg); err != nil {
		return false, err
	}
	return true, nil
}
