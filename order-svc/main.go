package main

import (
	"context"
	"log"
	"time"

	"bistro/config"
	httpapi "bistro/order-svc/internal/api/http"
	"bistro/order-svc/internal/catalog"
	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
	"bistro/order-svc/internal/payment"
	"bistro/order-svc/internal/service"
	"bistro/order-svc/internal/session"
	"bistro/order-svc/internal/storage"
)

func main() {
	settings := config.LoadSettings()

	var menu service.CatalogProvider
	switch settings.CatalogSource {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresCatalog(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		menu = pg
	default:
		menu = catalog.NewStatic(catalog.DefaultMenu())
	}

	var guard service.CheckoutGuard
	if settings.RedisHost != "" {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		guard = storage.NewRedisCheckoutGuard(rdb, settings.CheckoutGuardTTL)
	} else {
		log.Println("[order-svc] REDIS_HOST not set, duplicate checkout guard disabled")
	}

	var publisher service.EventPublisher
	if settings.KafkaBroker != "" {
		writer := config.NewKafkaWriter(settings.KafkaBroker)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer, settings.OrdersTopic, settings.ReservationsTopic)
	} else {
		log.Println("[order-svc] KAFKA_BROKER not set, events will not be published")
	}

	pricing := engine.Pricing{TaxRate: settings.TaxRate, DeliveryFee: settings.DeliveryFee}
	sessions := session.NewRegistry(pricing, settings.SessionTTL)
	go pruneSessions(sessions, time.Minute)

	qr := service.DefaultQRGenerator{BaseURL: settings.ReceiptBaseURL}

	handler := httpapi.NewHandler(
		domain.RestaurantInfo{
			Name:    settings.RestaurantName,
			Hours:   settings.RestaurantHours,
			Phone:   settings.RestaurantPhone,
			Address: settings.RestaurantAddress,
		},
		sessions,
		service.NewMenuService(menu),
		service.NewCartService(menu),
		service.NewCheckoutService(payment.NewStub(settings.PaymentDelay), guard, publisher, qr),
		service.NewReservationService(settings.ReservationDelay, publisher),
	)

	httpapi.StartServer(settings.OrderSvcAddr, httpapi.NewRouter(handler))
}

func pruneSessions(sessions *session.Registry, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for now := range ticker.C {
		if n := sessions.Prune(now); n > 0 {
			log.Printf("[order-svc] pruned %d idle sessions", n)
		}
	}
}
