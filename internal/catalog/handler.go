package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/gennaskitchen/service-api-go/internal/errs"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// Handler exposes HTTP endpoints for catalog operations.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// ProductRequest is the body for both create and update.
type ProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid product payload", "err", err)
		utilities.RespondErr(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := h.svc.AddProduct(r.Context(), req.Name, req.Price)
	if err != nil {
		h.respondError(w, err, "The product already exist")
		return
	}
	utilities.RespondOK(w, http.StatusCreated, "Product added successfully", p)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.logger.Errorw("list products failed", "err", err)
		utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
		return
	}
	msg := "Products retrieved successfully"
	if len(products) == 0 {
		msg = "There are no products available at the moment"
	}
	utilities.RespondOK(w, http.StatusOK, msg, products)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, err, "")
		return
	}
	utilities.RespondOK(w, http.StatusOK, "Product retrieved successfully", p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid product payload", "err", err)
		utilities.RespondErr(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := h.svc.UpdateProduct(r.Context(), r.PathValue("id"), req.Name, req.Price)
	if err != nil {
		h.respondError(w, err, "The product already exist")
		return
	}
	utilities.RespondOK(w, http.StatusOK, "Product updated successfully", p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		h.respondError(w, err, "")
		return
	}
	utilities.RespondOK(w, http.StatusOK, "Product deleted successfully", nil)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, duplicateMsg string) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		utilities.RespondErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrDuplicateProduct):
		utilities.RespondErr(w, http.StatusConflict, duplicateMsg)
	case errors.Is(err, errs.ErrProductNotFound):
		utilities.RespondErr(w, http.StatusNotFound, "Product does not exist")
	default:
		h.logger.Errorw("catalog operation failed", "err", err)
		utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
	}
}
