package main

import (
	"log"

	httpapi "quickbite/user-svc/internal/api/http"
	"quickbite/config"
	"quickbite/user-svc/internal/service"
	"quickbite/user-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed default users:", err)
	}

	userSvc := service.NewUserService(repo)
	handler := httpapi.NewHandler(userSvc)

	httpapi.StartServer(":"+config.GetEnv("USER_PORT", "8082"), httpapi.NewRouter(handler))
}
