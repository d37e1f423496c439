package main

import (
	"encoding/json"

	logrus "github.com/sirupsen/logrus"

	"github.com/OramaLabs/launchpad-program/pkg/config"
)

// eventMessage mirrors the frames the settlement service publishes to the
// launch events queue.
type eventMessage struct {
	Event     string          `json:"event"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	msgConsumer, err := config.NewConsumer(config.LaunchEventsQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("Launch events worker started, waiting for messages...")

	err = msgConsumer.Consume(func(msg []byte) error {
		var event eventMessage
		if err := json.Unmarshal(msg, &event); err != nil {
			logrus.Errorf("Failed to unmarshal message: %v", err)
			return err
		}

		logrus.WithFields(logrus.Fields{
			"event":     event.Event,
			"timestamp": event.Timestamp,
			"payload":   string(event.Payload),
		}).Info("Settlement event received")

		return nil
	})
	if err != nil {
		logrus.Fatal("Failed to start consumer: ", err)
	}
}
