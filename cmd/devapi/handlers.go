package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type product struct {
	ProductID   string          `json:"productId"`
	Model       string          `json:"model"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Color       string          `json:"color"`
	Features    string          `json:"productFeatures"`
	Image       string          `json:"imageOfProduct"`
}

type lineItem struct {
	ProductID string          `json:"productId"`
	Model     string          `json:"model"`
	Brand     string          `json:"brand"`
	Quantity  int64           `json:"itemQuantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"imageOfProduct"`
}

type user struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Role     string `json:"userRole"`
	password string
}

type server struct {
	log *slog.Logger

	mu       sync.Mutex
	users    map[string]user
	products []product
	carts    map[string][]lineItem
}

func newServer(log *slog.Logger) *server {
	return &server{
		log:   log,
		users: make(map[string]user),
		carts: make(map[string][]lineItem),
	}
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/products", s.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/products", s.createProduct).Methods(http.MethodPost)

	r.HandleFunc("/user/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/register/", s.register).Methods(http.MethodPost)

	r.HandleFunc("/cart/{userId}", s.getCart).Methods(http.MethodGet)
	r.HandleFunc("/cart/addtocart/{userId}", s.addToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/remove", s.removeFromCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/checkout/{userId}", s.checkout).Methods(http.MethodPut)

	return r
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

func writeFieldErrs(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}

// --- catalog ---

func (s *server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.products)
}

func (s *server) createProduct(w http.ResponseWriter, r *http.Request) {
	var p product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if p.ProductID == "" || p.Model == "" || p.Brand == "" {
		writeErr(w, http.StatusBadRequest, "productId, model and brand are required")
		return
	}
	if p.Price.Sign() <= 0 {
		writeFieldErrs(w, map[string]string{"price": "Price must be greater than zero"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.products {
		if existing.ProductID == p.ProductID {
			writeFieldErrs(w, map[string]string{"productId": "Product ID already exists"})
			return
		}
	}
	s.products = append(s.products, p)
	writeJSON(w, http.StatusCreated, p)
}

// --- auth / registration ---

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"userId"`
		Password string `json:"userPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[req.UserID]
	if !ok || u.password != req.Password {
		writeErr(w, http.StatusUnauthorized, "Invalid user ID or password")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *server) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"userId"`
		UserName string `json:"userName"`
		Password string `json:"userPassword"`
		Role     string `json:"userRole"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || req.Password == "" {
		writeFieldErrs(w, map[string]string{"userId": "User ID cannot be null"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.UserID]; exists {
		writeFieldErrs(w, map[string]string{"userId": "User ID already exists"})
		return
	}
	role := req.Role
	if role == "" {
		role = "CUSTOMER"
	}
	s.users[req.UserID] = user{UserID: req.UserID, UserName: req.UserName, Role: role, password: req.Password}
	writeJSON(w, http.StatusCreated, map[string]string{"userId": req.UserID, "status": "REGISTERED"})
}

// --- cart ---

func (s *server) getCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	if items == nil {
		items = []lineItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// addToCart upserts one line at the absolute quantity in the request. The
// catalog price wins over whatever the client sent.
func (s *server) addToCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req lineItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Quantity <= 0 {
		writeErr(w, http.StatusBadRequest, "itemQuantity must be positive")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var cataloged *product
	for i := range s.products {
		if s.products[i].ProductID == req.ProductID {
			cataloged = &s.products[i]
			break
		}
	}
	if cataloged == nil {
		writeErr(w, http.StatusNotFound, "product not found")
		return
	}

	line := lineItem{
		ProductID: cataloged.ProductID,
		Model:     cataloged.Model,
		Brand:     cataloged.Brand,
		Quantity:  req.Quantity,
		Price:     cataloged.Price,
		Image:     cataloged.Image,
	}

	items := s.carts[userID]
	replaced := false
	for i := range items {
		if items[i].ProductID == line.ProductID {
			items[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, line)
	}
	s.carts[userID] = items

	writeJSON(w, http.StatusOK, line)
}

func (s *server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	productID := r.URL.Query().Get("productId")
	if userID == "" || productID == "" {
		writeErr(w, http.StatusBadRequest, "userId and productId are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"status": "REMOVED"})
			return
		}
	}
	writeErr(w, http.StatusNotFound, "product not in cart")
}

func (s *server) checkout(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req struct {
		UserID   string     `json:"userId"`
		Products []lineItem `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Products) == 0 {
		writeErr(w, http.StatusBadRequest, "cannot check out an empty cart")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)

	s.log.Info("order placed",
		slog.String("user_id", userID),
		slog.Int("lines", len(req.Products)),
	)
	writeJSON(w, http.StatusOK, map[string]string{
		"orderId": uuid.NewString(),
		"status":  "CONFIRMED",
	})
}
