package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
	"bistro/order-svc/internal/payment"
	"bistro/order-svc/internal/service"
	"bistro/order-svc/internal/session"
)

// SessionHeader carries the id returned by POST /api/sessions.
const SessionHeader = "X-Session-ID"

// statusClientClosedRequest is reported when the caller went away mid-request.
const statusClientClosedRequest = 499

type Handler struct {
	Restaurant   domain.RestaurantInfo
	Sessions     *session.Registry
	Menu         service.MenuServiceInterface
	Cart         service.CartServiceInterface
	Checkout     service.CheckoutServiceInterface
	Reservations service.ReservationServiceInterface
}

func NewHandler(
	info domain.RestaurantInfo,
	sessions *session.Registry,
	menuSvc service.MenuServiceInterface,
	cartSvc service.CartServiceInterface,
	checkoutSvc service.CheckoutServiceInterface,
	reservationSvc service.ReservationServiceInterface,
) *Handler {
	return &Handler{
		Restaurant:   info,
		Sessions:     sessions,
		Menu:         menuSvc,
		Cart:         cartSvc,
		Checkout:     checkoutSvc,
		Reservations: reservationSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurant", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/items/{itemId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/items/{itemId}/customizations", h.getCustomizations).Methods("GET")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}", h.deleteSession).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{lineId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/order-type", h.setOrderType).Methods("PUT")

	r.HandleFunc("/api/checkout/validate", h.validateCheckout).Methods("POST")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"sessions":  h.Sessions.Len(),
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Item(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getCustomizations(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Menu.Customizations(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var identity session.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	sess := h.Sessions.Create(identity)
	log.Printf("[order-svc] session %s created", sess.ID)
	writeJSON(w, http.StatusCreated, sess)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Delete(mux.Vars(r)["sessionId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Cart.View(sess))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req service.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	line, err := h.Cart.Add(r.Context(), sess, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.Cart.Remove(sess, mux.Vars(r)["lineId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.Cart.Clear(sess)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setOrderType(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body struct {
		OrderType domain.OrderType `json:"order_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Cart.SetOrderType(sess, body.OrderType); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Cart.View(sess))
}

func (h *Handler) validateCheckout(w http.ResponseWriter, r *http.Request) {
	var form domain.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	response := map[string]interface{}{
		"valid":  true,
		"errors": engine.ValidationErrors{},
	}
	if err := h.Checkout.Validate(form); err != nil {
		response["valid"] = false
		var verrs engine.ValidationErrors
		if errors.As(err, &verrs) {
			response["errors"] = verrs
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var form domain.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	receipt, err := h.Checkout.Checkout(r.Context(), sess, form)
	if err != nil {
		log.Printf("[order-svc] checkout failed for session %s: %v", sess.ID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	confirmation, err := h.Reservations.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		http.Error(w, "missing "+SessionHeader+" header", http.StatusBadRequest)
		return nil, false
	}
	sess, err := h.Sessions.Get(id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var verrs engine.ValidationErrors
	var verr engine.ValidationError
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error(), "errors": verrs})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error(), "errors": engine.ValidationErrors{verr}})
	default:
		http.Error(w, err.Error(), statusFor(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyCart):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrDuplicateCheckout):
		return http.StatusConflict
	case errors.Is(err, payment.ErrPaymentFailed), errors.Is(err, payment.ErrInvalidAmount):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrCancelled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}
