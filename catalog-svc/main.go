package main

import (
	"log"
	"time"

	httpapi "quickbite/catalog-svc/internal/api/http"
	"quickbite/catalog-svc/internal/service"
	"quickbite/catalog-svc/internal/storage"
	"quickbite/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed default menu:", err)
	}

	cache := storage.NewMenuCache(rdb, 5*time.Minute)
	catalogSvc := service.NewCatalogService(repo, cache)
	handler := httpapi.NewHandler(catalogSvc)

	httpapi.StartServer(":"+config.GetEnv("CATALOG_PORT", "8081"), httpapi.NewRouter(handler))
}
