// seehuhn.de/go/annotate - render annotations onto images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Annotated serves the annotation export engine over HTTP.
//
// The service is configured through environment variables, see the
// internal/config package.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"seehuhn.de/go/annotate"
	"seehuhn.de/go/annotate/internal/config"
	"seehuhn.de/go/annotate/internal/logger"
	"seehuhn.de/go/annotate/internal/server"
	"seehuhn.de/go/annotate/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := openRecords(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open record store", zap.Error(err))
	}
	pixels, err := openPixels(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open pixel source", zap.Error(err))
	}

	exporter := annotate.NewExporter(records, pixels, log)
	srv := server.New(cfg.Server, exporter, log)

	go func() {
		if err := srv.Run(); err != nil {
			log.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

func openRecords(ctx context.Context, cfg *config.Config, log *zap.Logger) (annotate.Records, error) {
	switch cfg.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("Using Redis record store", zap.String("addr", cfg.Redis.Addr))
		return store.NewRedis(client), nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("postgres: %w", err)
		}
		log.Info("Using PostgreSQL record store")
		return store.NewPostgres(db), nil
	default:
		m := store.NewMemory()
		if cfg.Store.Fixtures != "" {
			f, err := os.Open(cfg.Store.Fixtures)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			n, err := m.LoadFixtures(f)
			if err != nil {
				return nil, err
			}
			log.Info("Loaded fixtures",
				zap.String("file", cfg.Store.Fixtures),
				zap.Int("images", n))
		}
		return m, nil
	}
}

func openPixels(ctx context.Context, cfg *config.Config, log *zap.Logger) (annotate.Pixels, error) {
	switch cfg.Pixels.Backend {
	case "s3":
		log.Info("Using S3 pixel source",
			zap.String("endpoint", cfg.S3.Endpoint),
			zap.String("bucket", cfg.S3.BucketName))
		s3, err := store.NewS3(ctx, store.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			BucketName:      cfg.S3.BucketName,
			Region:          cfg.S3.Region,
		}, log)
		if err != nil {
			return nil, err
		}
		return s3, nil
	default:
		return store.Files{Root: cfg.Pixels.Root}, nil
	}
}
