package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"presensi/internal/config"
	"presensi/internal/queue"
	"presensi/internal/sheets"
	"presensi/internal/store"
)

// Worker drains the submission queue and relays each payload to the sheet
// web app. Delivery is fire-and-forget: the endpoint gives nothing back, so
// a message is dropped after one attempt either way and failures are only
// visible in the logs.
func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)
	}

	client := sheets.New(cfg.ProxyURL, cfg.SheetCSVURL, cfg.WebAppURL, cfg.FetchTimeout, log)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Info("worker started, waiting for submissions...")
	for msg := range messages {
		var sub sheets.Submission
		if err := json.Unmarshal(msg.Body, &sub); err != nil {
			log.WithField("id", msg.ID).WithError(err).Warn("dropping malformed submission")
			continue
		}

		if err := client.Submit(ctx, sub); err != nil {
			log.WithFields(logrus.Fields{
				"id":     msg.ID,
				"action": sub.Action,
			}).WithError(err).Warn("submission relay failed")
			continue
		}

		log.WithFields(logrus.Fields{
			"id":     msg.ID,
			"action": sub.Action,
			"nip":    sub.User.NIP,
		}).Info("submission relayed")

		time.Sleep(10 * time.Millisecond)
	}

	log.Info("worker stopped")
}
