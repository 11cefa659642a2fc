package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Settings is the static configuration shared by the services. Restaurant
// details are only echoed to clients; pricing values feed the order engine.
type Settings struct {
	OrderSvcAddr     string
	DashboardSvcAddr string
	GatewayAddr      string

	RestaurantName    string
	RestaurantHours   string
	RestaurantPhone   string
	RestaurantAddress string

	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal

	PaymentDelay     time.Duration
	ReservationDelay time.Duration
	CheckoutGuardTTL time.Duration
	SessionTTL       time.Duration

	ReceiptBaseURL string
	CatalogSource  string

	// Optional backends; empty disables the component that needs them.
	RedisHost         string
	KafkaBroker       string
	OrdersTopic       string
	ReservationsTopic string
}

func LoadSettings() Settings {
	return Settings{
		OrderSvcAddr:     getEnv("ORDER_SVC_ADDR", ":8081"),
		DashboardSvcAddr: getEnv("DASHBOARD_SVC_ADDR", ":8083"),
		GatewayAddr:      getEnv("GATEWAY_ADDR", ":8080"),

		RestaurantName:    getEnv("RESTAURANT_NAME", "Bistro"),
		RestaurantHours:   getEnv("RESTAURANT_HOURS", "Mon-Sun 11:00-22:00"),
		RestaurantPhone:   getEnv("RESTAURANT_PHONE", "(555) 010-0100"),
		RestaurantAddress: getEnv("RESTAURANT_ADDRESS", "123 Main Street"),

		TaxRate:     getDecimal("TAX_RATE", "0.08"),
		DeliveryFee: getDecimal("DELIVERY_FEE", "5.99"),

		PaymentDelay:     getDuration("PAYMENT_DELAY", 1500*time.Millisecond),
		ReservationDelay: getDuration("RESERVATION_DELAY", time.Second),
		CheckoutGuardTTL: getDuration("CHECKOUT_GUARD_TTL", 10*time.Minute),
		SessionTTL:       getDuration("SESSION_TTL", 2*time.Hour),

		ReceiptBaseURL: getEnv("RECEIPT_BASE_URL", "http://localhost:8080"),
		CatalogSource:  getEnv("CATALOG_SOURCE", "static"),

		RedisHost:         os.Getenv("REDIS_HOST"),
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		OrdersTopic:       getEnv("ORDERS_TOPIC", "orders"),
		ReservationsTopic: getEnv("RESERVATIONS_TOPIC", "reservations"),
	}
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getDecimal(key, defaultValue string) decimal.Decimal {
	value := getEnv(key, defaultValue)
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() {
		log.Printf("[config] invalid %s=%q, using %s", key, value, defaultValue)
		return decimal.RequireFromString(defaultValue)
	}
	return d
}
