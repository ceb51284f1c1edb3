package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"eventbite/internal/config"
	"eventbite/internal/logger"
)

// Producer publishes activity records (event created, contribution
// created/updated/deleted) to Kafka. It is fire-and-forget: publish
// failures are logged and never surfaced to the request path. In mock
// mode nothing is written, only logged.
type Producer struct {
	writer   *kafka.Writer
	topics   config.TopicConfig
	mockMode bool
	logger   *logger.Logger
}

func NewProducer(cfg config.KafkaConfig, log *logger.Logger) *Producer {
	p := &Producer{
		topics:   cfg.Topics,
		mockMode: cfg.MockMode,
		logger:   log,
	}
	if !cfg.MockMode {
		p.writer = &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Balancer: &kafka.LeastBytes{},
		}
	}
	return p
}

func (p *Producer) publish(topic string, key int64, payload interface{}) {
	msgBytes, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("KAFKA", fmt.Sprintf("Failed to marshal payload for %s: %v", topic, err))
		return
	}

	if p.mockMode {
		p.logger.LogKafka("MOCK", topic, string(msgBytes))
		return
	}

	err = p.writer.WriteMessages(context.Background(), kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(key, 10)),
		Value: msgBytes,
	})
	if err != nil {
		p.logger.Error("KAFKA", fmt.Sprintf("Failed to publish to %s: %v", topic, err))
		return
	}
	p.logger.LogKafka("PUBLISH", topic, string(msgBytes))
}

// PublishEventCreated streams an event creation record.
func (p *Producer) PublishEventCreated(eventID int64, name string) {
	p.publish(p.topics.EventCreated, eventID, map[string]interface{}{
		"event_id": eventID,
		"name":     name,
	})
}

// PublishContributionCreated streams a contribution creation record.
func (p *Producer) PublishContributionCreated(contributionID, goalID int64, assignee string, quantity int) {
	p.publish(p.topics.ContributionCreated, contributionID, map[string]interface{}{
		"contribution_id": contributionID,
		"goal_id":         goalID,
		"assignee":        assignee,
		"quantity":        quantity,
	})
}

// PublishContributionUpdated streams a contribution update record.
func (p *Producer) PublishContributionUpdated(contributionID int64) {
	p.publish(p.topics.ContributionUpdated, contributionID, map[string]interface{}{
		"contribution_id": contributionID,
	})
}

// PublishContributionDeleted streams a contribution deletion record.
func (p *Producer) PublishContributionDeleted(contributionID int64) {
	p.publish(p.topics.ContributionDeleted, contributionID, map[string]interface{}{
		"contribution_id": contributionID,
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
