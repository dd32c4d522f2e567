package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	auctionapp "github.com/muhammadheryan/el-rastro/application/auction"
	chatapp "github.com/muhammadheryan/el-rastro/application/chat"
	checkoutapp "github.com/muhammadheryan/el-rastro/application/checkout"
	filterapp "github.com/muhammadheryan/el-rastro/application/filter"
	productapp "github.com/muhammadheryan/el-rastro/application/product"
	userapp "github.com/muhammadheryan/el-rastro/application/user"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	FilterApp   filterapp.FilterApp
	ProductApp  productapp.ProductApp
	AuctionApp  auctionapp.AuctionApp
	ChatApp     chatapp.ChatApp
	CheckoutApp checkoutapp.CheckoutApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// Internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/auctions/{id}/close", rh.CloseAuction).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))

	api := mux.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/session", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.GetAuction).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/profile", rh.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/filters", rh.GetFilters).Methods(http.MethodGet)
	api.HandleFunc("/filters/draft", rh.UpdateFilterDraft).Methods(http.MethodPatch)
	api.HandleFunc("/filters/apply", rh.ApplyFilters).Methods(http.MethodPost)
	api.HandleFunc("/filters", rh.ClearFilters).Methods(http.MethodDelete)
	api.HandleFunc("/filters/{dimension}", rh.ClearFilter).Methods(http.MethodDelete)

	// Session routes
	api.HandleFunc("/auth/session", requireSession(rh.Logout)).Methods(http.MethodDelete)
	api.HandleFunc("/users/me/username", requireSession(rh.UpdateUsername)).Methods(http.MethodPut)
	api.HandleFunc("/users/me/location", requireSession(rh.UpdateLocation)).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/bids", requireSession(rh.GetUserBids)).Methods(http.MethodGet)
	api.HandleFunc("/products", requireSession(rh.CreateProduct)).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}/bids", requireSession(rh.PlaceBid)).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}/rating", requireSession(rh.SubmitRating)).Methods(http.MethodPut)
	api.HandleFunc("/chats", requireSession(rh.ListChats)).Methods(http.MethodGet)
	api.HandleFunc("/chats", requireSession(rh.StartChat)).Methods(http.MethodPost)
	api.HandleFunc("/chats/{id}", requireSession(rh.GetThread)).Methods(http.MethodGet)
	api.HandleFunc("/chats/{id}/messages", requireSession(rh.SendMessage)).Methods(http.MethodPost)
	api.HandleFunc("/checkout/{id}", requireSession(rh.GetCheckout)).Methods(http.MethodGet)
	api.HandleFunc("/checkout/{id}/payment", requireSession(rh.ConfirmPayment)).Methods(http.MethodPost)

	// middleware
	api.Use(ClientIDMiddleware())
	api.Use(AuthMiddleware(rh.UserApp))
	api.Use(NewRateLimiter(cfg.RateLimit).Middleware())
	mux.Use(LoggingMiddleware())

	return mux
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} transport.Response
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
