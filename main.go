package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"rankreel/api"
	"rankreel/common"
	"rankreel/composer"
	"rankreel/config"
	"rankreel/state"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	format, err := resolveFormat(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("format configuration invalid")
	}
	logrus.WithFields(logrus.Fields{
		"format":       format.Name,
		"total_frames": format.TotalFrames,
		"fps":          format.FPS,
	}).Info("format loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional collaborators: the service degrades to compose-only mode
	// when Redis, S3 or Kafka are not configured.
	var reporters []composer.StatusReporter

	var jobs *state.Store
	if cfg.RedisEnabled() {
		jobs = state.NewStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := jobs.Ping(ctx); err != nil {
			logrus.WithError(err).Fatal("redis unreachable")
		}
		reporters = append(reporters, jobs)
		logrus.Info("job status store connected")
	} else {
		logrus.Info("REDIS_ADDR not set, job status lookups disabled")
	}

	var artifacts composer.ArtifactStore
	if cfg.S3Enabled() {
		store, err := common.NewArtifactStore(ctx, common.ArtifactConfig{
			Bucket: cfg.S3Bucket,
			Region: cfg.S3Region,
		})
		if err != nil {
			logrus.WithError(err).Fatal("artifact store init failed")
		}
		artifacts = store
		logrus.WithField("bucket", cfg.S3Bucket).Info("artifact store connected")
	} else {
		logrus.Info("S3_BUCKET not set, composed specs will not be persisted")
	}

	if cfg.KafkaEnabled() {
		statusReporter, err := composer.NewKafkaStatusReporter(cfg)
		if err != nil {
			logrus.WithError(err).Fatal("kafka status producer init failed")
		}
		defer statusReporter.Close()
		reporters = append(reporters, statusReporter)
	}

	comp, err := composer.New(format, artifacts, reporters...)
	if err != nil {
		logrus.WithError(err).Fatal("composer init failed")
	}

	if cfg.KafkaEnabled() {
		consumer, err := composer.NewRecordConsumer(cfg, comp)
		if err != nil {
			logrus.WithError(err).Fatal("kafka consumer init failed")
		}
		if err := consumer.Start(ctx); err != nil {
			logrus.WithError(err).Fatal("kafka consumer start failed")
		}
		defer consumer.Close()
	} else {
		logrus.Info("KAFKA_BOOTSTRAP_SERVERS not set, running HTTP-only")
	}

	server := api.NewServer(comp, jobs)

	go func() {
		logrus.WithField("addr", cfg.ListenAddr).Info("http server listening")
		if err := server.Router().Run(cfg.ListenAddr); err != nil {
			logrus.WithError(err).Fatal("http server failed")
		}
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	logrus.Info("shutting down")
	cancel()
	// Let in-flight Kafka handling drain before the deferred closes run.
	time.Sleep(2 * time.Second)
}

// resolveFormat picks the configured format, from YAML profiles when
// FORMAT_PROFILES is set, otherwise the built-in default.
func resolveFormat(cfg config.Config) (config.Format, error) {
	if cfg.FormatProfilePath == "" {
		return config.DefaultFormat(), nil
	}

	formats, err := config.LoadFormats(cfg.FormatProfilePath)
	if err != nil {
		return config.Format{}, err
	}

	format, ok := formats[cfg.FormatName]
	if !ok {
		return config.Format{}, fmt.Errorf("format %q not defined in %s", cfg.FormatName, cfg.FormatProfilePath)
	}
	return format, nil
}
