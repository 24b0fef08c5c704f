package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/globook/globook-backend/globook/config"
	"github.com/globook/globook-backend/globook/internal/handler"
	"github.com/globook/globook-backend/globook/internal/repository"
	"github.com/globook/globook-backend/globook/internal/server"
	"github.com/globook/globook-backend/globook/internal/service"
	"github.com/globook/globook-backend/globook/migrations"
	"github.com/globook/globook-backend/pkg/kafka"
	"github.com/globook/globook-backend/pkg/logger"
	"github.com/globook/globook-backend/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "globook")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	svc := service.NewService(repo, log, cfg.CircuitBreaker)

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.CatchConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %w", err)
		}
		consumer := handler.NewConsumer(svc.ReportCatch, log)
		g.Go(func() error {
			return kafka.Consume(gCtx, group, consumer, kafka.CatchTopic)
		})
		go func() {
			select {
			case <-consumer.Ready():
				log.Info("catch consumer ready", zap.String("topic", kafka.CatchTopic))
			case <-gCtx.Done():
			}
		}()
	} else {
		log.Info("kafka is not configured, catch intake disabled")
	}

	h := handler.New(svc, log, cfg.Debug)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(srv.Run)

	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		log.Error("app stopped", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
