package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"quickbite/notify-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Notification Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *Consumer) ProcessEvent(event domain.OrderEvent) {
	if event.Type != domain.EventOrderCreated && event.Type != domain.EventStatusChanged {
		return
	}
	log.Printf("Processing event: Type=%s, OrderID=%d, Status=%s",
		event.Type, event.OrderID, event.Status)

	notification := &domain.Notification{
		OrderID:    event.OrderID,
		CustomerID: event.CustomerID,
		Type:       event.Type,
		Message:    messageFor(event),
	}
	if err := c.Store.SaveNotification(notification); err != nil {
		log.Printf("Error saving notification: %v", err)
		return
	}

	if err := c.Store.UpdateCounters(event.Status); err != nil {
		log.Printf("Error updating counters: %v", err)
		return
	}

	log.Printf("Successfully processed %s for order %d", event.Type, event.OrderID)
}

func messageFor(event domain.OrderEvent) string {
	if event.Type == domain.EventOrderCreated {
		return fmt.Sprintf("Order #%d placed, total $%.2f", event.OrderID, event.TotalAmount)
	}
	return fmt.Sprintf("Order #%d is now %s", event.OrderID, event.Status)
}
