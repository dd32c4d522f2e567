package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/el-rastro/model"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
)

// ListProducts handler
// @Summary Product listing
// @Description Products filtered by the caller's active filters, optionally of one owner
// @Tags Products
// @Produce json
// @Param owner query string false "Owner username"
// @Success 200 {object} model.ProductListView
// @Router /api/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ProductApp.ListProducts(ctx, filterScope(ctx), r.URL.Query().Get("owner"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary List a product
// @Description Creates the product and schedules the close of its auction
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateProductRequest true "Product"
// @Success 200 {object} model.Product
// @Failure 400 {object} transport.Response
// @Router /api/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, utilsContext.GetSession(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAuction handler
// @Summary Product page
// @Description Product with photo and the auction state for the caller
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.AuctionPage
// @Failure 404 {object} transport.Response
// @Router /api/products/{id} [get]
func (s *RestHandler) GetAuction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AuctionApp.GetAuction(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PlaceBid handler
// @Summary Bid on a product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.BidRequest true "Bid"
// @Success 200 {object} model.AuctionView
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /api/products/{id}/bids [post]
func (s *RestHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BidRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuctionApp.PlaceBid(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"], req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitRating handler
// @Summary Rate the other party of a sale
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.RatingRequest true "Rating"
// @Success 200 {object} model.AuctionView
// @Failure 400 {object} transport.Response
// @Router /api/products/{id}/rating [put]
func (s *RestHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RatingRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuctionApp.SubmitRating(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"], req.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUserBids handler
// @Summary Bids of the caller
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UserBidsView
// @Failure 404 {object} transport.Response
// @Router /api/users/{id}/bids [get]
func (s *RestHandler) GetUserBids(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AuctionApp.GetUserBids(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CloseAuction handler
// @Summary Close an auction
// @Description Called by the auction close consumer once the close date has passed
// @Tags Internal
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /internal/v1/auctions/{id}/close [post]
func (s *RestHandler) CloseAuction(w http.ResponseWriter, r *http.Request) {
	if err := s.AuctionApp.CloseAuction(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
