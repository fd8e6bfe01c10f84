package main

import (
	"context"
	"log"

	"quickbite/config"
	"quickbite/notify-svc/internal/service"
	"quickbite/notify-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "notify-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	consumer := service.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
