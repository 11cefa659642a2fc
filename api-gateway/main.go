package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"bistro/api-gateway/internal/gateway"
	"bistro/config"
)

func main() {
	settings := config.LoadSettings()
	gwConfig := gateway.Config{
		OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://localhost:8081"),
		DashboardSvcURL: getEnv("DASHBOARD_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Printf("[GATEWAY] API Gateway starting on %s", settings.GatewayAddr)
	log.Fatal(http.ListenAndServe(settings.GatewayAddr, handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
