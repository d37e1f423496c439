package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
	"github.com/OramaLabs/launchpad-program/internal/models"
	"github.com/OramaLabs/launchpad-program/pkg/amm"
	dbconfig "github.com/OramaLabs/launchpad-program/pkg/config"
	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

// FinalizeDuePools closes every active pool whose window has ended or whose
// target has been reached, then migrates the successful ones.
func FinalizeDuePools(svc *business.Service) error {
	now := svc.Now()

	var due []models.LaunchPool
	err := svc.DB().
		Where("status = ?", models.StatusActive).
		Where("end_time < ? OR raised_amount >= target_amount", now).
		Find(&due).Error
	if err != nil {
		logger.Errorf("> Failed to query due pools: %v", err)
		return err
	}

	if len(due) == 0 {
		return nil
	}
	logger.Infof("> Found %d pools due for finalization", len(due))

	for _, pool := range due {
		finalized, err := svc.FinalizeLaunch(pool.ID)
		if err != nil {
			// lost the race against a manual finalize, nothing to do
			if errors.Is(err, business.ErrLaunchNotActive) || errors.Is(err, business.ErrTooEarlyToFinalize) {
				continue
			}
			logger.Errorf("> Failed to finalize pool %d: %v", pool.ID, err)
			continue
		}
		logger.Infof("> Pool %d finalized: status=%s, raised=%d", finalized.ID, finalized.Status, finalized.RaisedAmount)

		if finalized.IsSuccess() {
			if _, err := svc.MigrateLaunch(finalized.ID, ""); err != nil {
				logger.Errorf("> Failed to migrate pool %d: %v", finalized.ID, err)
				continue
			}
			logger.Infof("> Pool %d migrated", finalized.ID)
		}
	}
	return nil
}

func main() {
	logger.SetFormatter(&logger.JSONFormatter{})
	logger.SetLevel(logger.InfoLevel)

	dbconfig.InitDB()

	var emitter business.Emitter
	if os.Getenv("RABBITMQ_HOST") != "" {
		dbconfig.InitRabbitMQ()
		defer dbconfig.RabbitMQ.Close()

		queueEmitter, err := dbconfig.NewQueueEmitter()
		if err != nil {
			logger.Fatal("Failed to create queue emitter: ", err)
		}
		defer queueEmitter.Close()
		emitter = queueEmitter
	}

	svc := business.NewService(dbconfig.DB, oracle.NewEd25519Verifier(), amm.NewSimulatedVenue(), emitter)

	c := cron.New()
	if _, err := c.AddFunc("* * * * *", func() {
		if err := FinalizeDuePools(svc); err != nil {
			logger.Errorf("Finalize sweep failed: %v", err)
		}
	}); err != nil {
		logger.Fatal("Failed to schedule finalize sweep: ", err)
	}
	c.Start()
	defer c.Stop()

	logger.Info("Finalize scheduler started, sweeping every minute")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Finalize scheduler stopping")
}
