// Package stubmarket is a local stand-in for the marketplace backend. It
// serves the three endpoints the client consumes, honors idempotency keys,
// and reproduces the backend quirk the delivery-flag policy works around:
// any flag other than the ordering merchant's id fails delivery assignment.
package stubmarket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/barriohq/ordering-client/internal/modules/checkout"
	"github.com/barriohq/ordering-client/internal/modules/payment"
)

// orderReply is what POST /orders returns on success.
type orderReply struct {
	OrderCode string                        `json:"orderCode"`
	Status    payment.OrderStatusDescriptor `json:"status"`
}

// Server holds the stub's in-memory state.
type Server struct {
	mu       sync.Mutex
	methods  []payment.PaymentMethod
	statuses map[string]payment.OrderStatusDescriptor
	// orders replays the same reply for a repeated idempotency key.
	orders map[string]orderReply
}

// New creates a stub with the marketplace's usual seed data.
func New() *Server {
	inactive := false
	return &Server{
		methods: []payment.PaymentMethod{
			{ID: 1, Label: "CASH", Description: "Pay in cash on delivery"},
			{ID: 2, Label: "CARD", Description: "Pay by card on delivery"},
			{ID: 3, Label: "TRANSFER", Description: "Bank transfer", Active: &inactive},
		},
		statuses: map[string]payment.OrderStatusDescriptor{
			"PENDING":   {ID: 1, Code: "PENDING", Description: "Order awaiting merchant confirmation"},
			"CONFIRMED": {ID: 2, Code: "CONFIRMED", Description: "Order confirmed by the merchant"},
			"DELIVERED": {ID: 3, Code: "DELIVERED", Description: "Order delivered"},
		},
		orders: make(map[string]orderReply),
	}
}

// Router builds the stub's HTTP surface.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/payment-methods", s.listPaymentMethods)
	r.Get("/order-statuses/by-code/{code}", s.getStatusByCode)
	r.Post("/orders", s.createOrder)
	return r
}

func (s *Server) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.methods)
}

func (s *Server) getStatusByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	status, ok := s.statuses[code]
	if !ok {
		respond(w, http.StatusNotFound, map[string]string{"message": fmt.Sprintf("unknown order status %s", code)})
		return
	}
	respond(w, http.StatusOK, status)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "invalid order payload"})
		return
	}

	if len(req.Items) == 0 {
		respond(w, http.StatusBadRequest, map[string]string{"message": "order must contain at least one item"})
		return
	}
	if req.CustomerID <= 0 {
		respond(w, http.StatusBadRequest, map[string]string{"message": "customerId is required"})
		return
	}
	if req.PaymentMethodID <= 0 {
		respond(w, http.StatusBadRequest, map[string]string{"message": "paymentMethodId is required"})
		return
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		respond(w, http.StatusBadRequest, map[string]string{"message": "deliveryAddress is required"})
		return
	}

	// The real backend only assigns delivery when the flag matches the
	// ordering merchant. Anything else dies in the fulfillment hand-off.
	if req.DeliveryFlag != req.Items[0].MerchantID {
		respond(w, http.StatusBadGateway, map[string]string{"message": "delivery assignment failed"})
		return
	}

	key := r.Header.Get("X-Idempotency-Key")

	s.mu.Lock()
	defer s.mu.Unlock()

	if key != "" {
		if reply, ok := s.orders[key]; ok {
			respond(w, http.StatusOK, reply)
			return
		}
	}

	reply := orderReply{
		OrderCode: generateOrderCode(),
		Status:    s.statuses["PENDING"],
	}
	if key != "" {
		s.orders[key] = reply
	}
	respond(w, http.StatusCreated, reply)
}

// generateOrderCode creates a human-readable order code: ORD-YYYYMMDD-XXXX.
func generateOrderCode() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

func respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
