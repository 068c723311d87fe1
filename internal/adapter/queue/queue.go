package queue

import (
	"encoding/json"

	"go.uber.org/zap"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}

// PublishJSON marshals the payload and publishes it. Events are emitted
// after the owning transaction commits, so a broker failure is logged but
// never surfaced to the caller.
func PublishJSON(mq MessageQueue, log *zap.Logger, subject string, payload interface{}) {
	if mq == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := mq.Publish(subject, data); err != nil {
		log.Error("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
