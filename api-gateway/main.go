package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"quickbite/api-gateway/internal/gateway"
	"quickbite/config"
)

func main() {
	cfg := gateway.Config{
		CatalogSvcURL: config.GetEnv("CATALOG_SVC_URL", "http://localhost:8081"),
		UserSvcURL:    config.GetEnv("USER_SVC_URL", "http://localhost:8082"),
		OrderSvcURL:   config.GetEnv("ORDER_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.GetEnv("GATEWAY_PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
