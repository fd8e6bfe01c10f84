package main

import (
	"log"
	"time"

	httpapi "quickbite/order-svc/internal/api/http"
	"quickbite/config"
	"quickbite/order-svc/internal/service"
	"quickbite/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	carts := storage.NewCartStore(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)
	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}

	cartSvc := service.NewCartService(carts, repo)
	orderSvc := service.NewOrderService(repo, carts, publisher, qr)
	handler := httpapi.NewHandler(cartSvc, orderSvc)

	httpapi.StartServer(":"+config.GetEnv("ORDER_PORT", "8083"), httpapi.NewRouter(handler))
}
