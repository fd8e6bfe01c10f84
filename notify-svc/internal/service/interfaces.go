package service

import (
	"context"

	"quickbite/notify-svc/internal/domain"
	"quickbite/notify-svc/internal/storage"
)

type StoreInterface interface {
	SaveNotification(n *domain.Notification) error
	UpdateCounters(status string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
