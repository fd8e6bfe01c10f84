package tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"quickbite/notify-svc/internal/domain"
	"quickbite/notify-svc/internal/mocks"
	"quickbite/notify-svc/internal/service"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		inputEvent     domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "order created",
			inputEvent: domain.OrderEvent{
				Type:        domain.EventOrderCreated,
				OrderID:     42,
				CustomerID:  7,
				Status:      "pending",
				TotalAmount: 26.72,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveNotification", mock.MatchedBy(func(n *domain.Notification) bool {
					return n.OrderID == 42 && n.Type == domain.EventOrderCreated
				})).Return(nil)
				mockStore.On("UpdateCounters", "pending").Return(nil)
			},
		},
		{
			name: "status changed",
			inputEvent: domain.OrderEvent{
				Type:    domain.EventStatusChanged,
				OrderID: 42,
				Status:  "confirmed",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveNotification", mock.Anything).Return(nil)
				mockStore.On("UpdateCounters", "confirmed").Return(nil)
			},
		},
		{
			name: "SaveNotification error",
			inputEvent: domain.OrderEvent{
				Type:    domain.EventOrderCreated,
				OrderID: 42,
				Status:  "pending",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveNotification", mock.Anything).Return(errors.New("db connection failed"))
			},
		},
		{
			name: "UpdateCounters error",
			inputEvent: domain.OrderEvent{
				Type:    domain.EventStatusChanged,
				OrderID: 42,
				Status:  "ready",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveNotification", mock.Anything).Return(nil)
				mockStore.On("UpdateCounters", "ready").Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessEvent(testCase.inputEvent)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_UnknownEventType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{
		Store: mockStore,
	}

	consumer.ProcessEvent(domain.OrderEvent{
		Type:    "unknown_type",
		OrderID: 42,
	})
	mockStore.AssertNotCalled(t, "SaveNotification")
	mockStore.AssertNotCalled(t, "UpdateCounters")
}
