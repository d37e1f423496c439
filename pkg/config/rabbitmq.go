package config

import (
	"fmt"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var RabbitMQ *amqp.Connection

// InitRabbitMQ dials the broker carrying the launch events queue. The broker
// usually comes up alongside the service, so the dial retries before giving up.
func InitRabbitMQ() {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASSWORD"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)

	const maxRetries = 10
	retryDelay := 3 * time.Second

	var err error
	for i := 0; i < maxRetries; i++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(url)
		if err == nil {
			RabbitMQ = conn
			log.Printf("Connected to RabbitMQ at %s", os.Getenv("RABBITMQ_HOST"))
			return
		}
		if i < maxRetries-1 {
			log.Printf("RabbitMQ dial failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		}
	}

	log.Fatalf("Could not reach RabbitMQ after %d attempts: %v", maxRetries, err)
}
