// Package main boots the plan core with its default wiring. The inbound
// transport lives in the surrounding application; this binary verifies the
// container, runs migrations when configured, and idles until stopped.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/container"
	"github.com/platewise/v1/internal/ports/inbound"
)

func main() {
	app := fx.New(
		fx.NopLogger, // use our own logger instead of Fx's
		container.Module,
		fx.Invoke(func(service inbound.PlanService, logger *zap.Logger) {
			logger.Info("plan core ready",
				zap.String("service", "platewise"),
			)
		}),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startCtx, startCancel := context.WithTimeout(ctx, 15*time.Second)
	defer startCancel()
	if err := app.Start(startCtx); err != nil {
		log.Fatalf("starting application: %v", err)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatalf("stopping application: %v", err)
	}
}
