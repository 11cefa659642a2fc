package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"bistro/config"
	httpapi "bistro/dashboard-svc/internal/api/http"
	"bistro/dashboard-svc/internal/service"
	"bistro/dashboard-svc/internal/storage"
)

const consumerGroup = "dashboard-svc-consumer"

func main() {
	settings := config.LoadSettings()

	rdb := config.MustInitRedis()
	defer rdb.Close()
	store := storage.NewStore(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if settings.KafkaBroker == "" {
		log.Println("[dashboard-svc] KAFKA_BROKER not set, serving existing aggregates only")
	} else {
		for _, topic := range []string{settings.OrdersTopic, settings.ReservationsTopic} {
			reader := config.NewKafkaReader(settings.KafkaBroker, topic, consumerGroup)
			defer reader.Close()
			go service.NewConsumer(reader, store).Start(ctx)
		}
	}

	handler := httpapi.NewHandler(service.NewAnalyticsService(store))
	httpapi.StartServer(settings.DashboardSvcAddr, httpapi.NewRouter(handler))
}
