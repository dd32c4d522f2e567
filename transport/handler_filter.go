package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
)

// GetFilters handler
// @Summary Current product filters
// @Tags Filters
// @Produce json
// @Success 200 {object} model.FilterStateView
// @Router /api/filters [get]
func (s *RestHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.FilterApp.Get(ctx, filterScope(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateFilterDraft handler
// @Summary Edit draft filters
// @Description Partial update of the draft; the listing keeps using the active filters
// @Tags Filters
// @Accept json
// @Produce json
// @Param request body model.FilterDraft true "Draft"
// @Success 200 {object} model.FilterStateView
// @Failure 400 {object} transport.Response
// @Router /api/filters/draft [patch]
func (s *RestHandler) UpdateFilterDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.FilterDraft
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FilterApp.UpdateDraft(ctx, filterScope(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApplyFilters handler
// @Summary Apply draft filters
// @Tags Filters
// @Produce json
// @Success 200 {object} model.FilterStateView
// @Router /api/filters/apply [post]
func (s *RestHandler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.FilterApp.Apply(ctx, filterScope(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearFilters handler
// @Summary Clear every filter
// @Tags Filters
// @Produce json
// @Success 200 {object} model.FilterStateView
// @Router /api/filters [delete]
func (s *RestHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.FilterApp.ClearAll(ctx, filterScope(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearFilter handler
// @Summary Clear one filter
// @Tags Filters
// @Produce json
// @Param dimension path string true "title, minPrice, maxPrice, orderInitialDate or orderCloseDate"
// @Success 200 {object} model.FilterStateView
// @Failure 400 {object} transport.Response
// @Router /api/filters/{dimension} [delete]
func (s *RestHandler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dimension := constant.FilterDimension(mux.Vars(r)["dimension"])
	res, err := s.FilterApp.ClearOne(ctx, filterScope(ctx), dimension)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
