// One-shot expiry sweep, meant to run from cron. The API exposes the
// same operation at POST /admin/subscriptions/sweep.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"gymhub/internal/config"
	"gymhub/internal/database"
	"gymhub/internal/domain/payment"
	"gymhub/internal/domain/subscription"
	"gymhub/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logging.Init(cfg.Env)
	log := logging.Module("sweeper")

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	repo := subscription.NewRepository(db)
	svc := subscription.NewService(db, repo, nil, nil, nil, payment.NewRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := svc.ExpireDue(ctx)
	if err != nil {
		log.WithError(err).Fatal("sweep failed")
	}

	log.WithFields(logrus.Fields{
		"owner_subscriptions_expired":  result.OwnerExpired,
		"member_subscriptions_expired": result.MemberExpired,
	}).Info("sweep completed")
}
