package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"quickbite/auth"
	"quickbite/order-svc/internal/domain"
	"quickbite/order-svc/internal/service"
)

type Handler struct {
	Carts  service.CartServiceInterface
	Orders service.OrderServiceInterface
}

func NewHandler(cartSvc service.CartServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{Carts: cartSvc, Orders: orderSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.createCart).Methods("POST")
	r.HandleFunc("/api/cart/{cartId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{cartId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{cartId}/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/{cartId}/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/{cartId}", h.clearCart).Methods("DELETE")

	r.HandleFunc("/api/orders", auth.OptionalAuth(h.checkout)).Methods("POST")
	r.HandleFunc("/api/orders", auth.RequireRole(h.listOrders, auth.RoleRestaurant, auth.RoleAdmin)).Methods("GET")
	r.HandleFunc("/api/orders/customer/{id}", auth.RequireAuth(h.listCustomerOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", auth.RequireRole(h.updateOrderStatus, auth.RoleRestaurant, auth.RoleAdmin)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/history", auth.RequireRole(h.getStatusHistory, auth.RoleRestaurant, auth.RoleAdmin)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.CreateCart(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.GetCart(r.Context(), mux.Vars(r)["cartId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":   cart,
		"totals": cart.Totals(),
	})
}

type cartItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["cartId"], req.MenuItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			http.Error(w, "Menu item not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":   cart,
		"totals": cart.Totals(),
	})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt(w, r, "itemId")
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.UpdateItem(r.Context(), mux.Vars(r)["cartId"], itemID, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":   cart,
		"totals": cart.Totals(),
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt(w, r, "itemId")
	if !ok {
		return
	}

	cart, err := h.Carts.RemoveItem(r.Context(), mux.Vars(r)["cartId"], itemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":   cart,
		"totals": cart.Totals(),
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.ClearCart(r.Context(), mux.Vars(r)["cartId"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Ownership comes from the token, never from the body: a logged-in
	// customer owns the order, an anonymous one stays anonymous.
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		req.CustomerID = claims.UserID
	} else {
		req.CustomerID = 0
	}

	order, err := h.Orders.Checkout(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	if claims.Role == auth.RoleCustomer && claims.UserID != customerID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	orders, err := h.Orders.ListCustomerOrders(customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Orders.GetOrder(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	status, err := h.Orders.GetStatus(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	order, err := h.Orders.UpdateStatus(r.Context(), id, req.Status, claims.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, service.ErrUnknownStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getStatusHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	history, err := h.Orders.GetStatusHistory(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	png, err := h.Orders.GetQRCode(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
