package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
)

// GetCheckout handler
// @Summary Checkout of a won auction
// @Description Final price with the shipping emissions estimate
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.CheckoutView
// @Failure 404 {object} transport.Response
// @Router /api/checkout/{id} [get]
func (s *RestHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.CheckoutApp.GetCheckout(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfirmPayment handler
// @Summary Confirm payment
// @Description Marks the product paid once the payment provider approved the order
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.PaymentResult
// @Failure 404 {object} transport.Response
// @Router /api/checkout/{id}/payment [post]
func (s *RestHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.CheckoutApp.ConfirmPayment(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
