package config

import (
	"log"
	"time"
)

// LaunchEventsQueue carries every settlement event emitted by the service.
const LaunchEventsQueue = "launch_events"

type queueMessage struct {
	Event     string      `json:"event"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// QueueEmitter forwards settlement events to the launch events queue. Publish
// failures are logged and swallowed: the settlement already committed, and
// the queue is a downstream notification channel, not part of the write path.
type QueueEmitter struct {
	publisher *Publisher
}

func NewQueueEmitter() (*QueueEmitter, error) {
	publisher, err := NewPublisher()
	if err != nil {
		return nil, err
	}
	return &QueueEmitter{publisher: publisher}, nil
}

func (e *QueueEmitter) Emit(event string, payload interface{}) {
	msg := queueMessage{
		Event:     event,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if err := e.publisher.Publish(LaunchEventsQueue, msg); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}

func (e *QueueEmitter) Close() error {
	return e.publisher.Close()
}
