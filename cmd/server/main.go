package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"mimir/api/grpcserver"
	"mimir/api/pb"
	"mimir/infra/kafka"
	"mimir/infra/outbox"
	"mimir/jobs/broadcaster"
	"mimir/service"
	"mimir/util"
)

func main() {
	_ = godotenv.Load()

	addr := envOr("GRPC_ADDR", ":50051")
	outboxDir := envOr("OUTBOX_DIR", "./outbox")
	topic := envOr("KAFKA_TOPIC", "mimir.events")
	brokers := splitBrokers(os.Getenv("KAFKA_BROKERS"))

	logger, err := util.NewLogger()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// ---------------- Outbox ----------------

	box, err := outbox.Open(outboxDir, util.RealClock{})
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	// ---------------- Kafka (optional) ----------------

	var feed *kafka.Feed
	if len(brokers) > 0 {
		feed = kafka.NewFeed(brokers, topic)
		defer feed.Close()
	}

	// ---------------- Service ----------------

	svc := service.New(logger, box, feed)

	// ---------------- Background jobs ----------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(brokers) > 0 {
		producer, err := broadcaster.NewSyncProducer(brokers)
		if err != nil {
			log.Fatalf("kafka producer init failed: %v", err)
		}
		bc := broadcaster.New(box, producer, topic, 250*time.Millisecond, logger)
		defer bc.Close()
		go bc.Run(ctx)
	} else {
		logger.Info("KAFKA_BROKERS unset, events stay in the outbox")
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.New(svc, logger))

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()

	fmt.Printf("mimir engine running on %s\n", addr)
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitBrokers(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
