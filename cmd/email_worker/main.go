package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/config"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
	"github.com/carhub-dev/carhub-api/pkg/mailer"
)

// email_worker consumes email jobs from RabbitMQ and sends them via Mailgun.
// Run alongside the API server; registration enqueues welcome emails here.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	// One message at a time; mail sends are slow and retried via nack.
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	sender := mailer.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker consuming from %q", cfg.RabbitMQEmailQueue)

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				os.Exit(1)
			}
			handleDelivery(ctx, logger, sender, d)
		}
	}
}

func handleDelivery(ctx context.Context, logger *logrus.Logger, sender *mailer.Mailer, d amqp.Delivery) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.WithError(err).Error("malformed email job, dropping")
		_ = d.Nack(false, false)
		return
	}
	if err := sender.Send(ctx, job); err != nil {
		logger.WithError(err).WithField("to", job.To).Error("failed to send email, requeueing")
		_ = d.Nack(false, true)
		return
	}
	logger.WithField("to", job.To).Info("email sent")
	_ = d.Ack(false)
}
