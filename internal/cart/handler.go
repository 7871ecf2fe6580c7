package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/gennaskitchen/service-api-go/internal/errs"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// Handler exposes HTTP endpoints for cart operations.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// AddRequest is the body for adding a product to a cart.
type AddRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid cart payload", "err", err)
		utilities.RespondErr(w, http.StatusBadRequest, "invalid payload")
		return
	}
	line, err := h.svc.AddToCart(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utilities.RespondOK(w, http.StatusCreated, "Product added to cart successfully", line)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.ListCart(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.logger.Errorw("list cart failed", "err", err)
		utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
		return
	}
	msg := "Cart retrieved successfully"
	if len(lines) == 0 {
		msg = "Your cart is empty"
	}
	utilities.RespondOK(w, http.StatusOK, msg, lines)
}

// UpdateRequest carries the new quantity for a cart line.
type UpdateRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid cart payload", "err", err)
		utilities.RespondErr(w, http.StatusBadRequest, "invalid payload")
		return
	}
	line, err := h.svc.UpdateCartLine(r.Context(), r.PathValue("userId"), r.PathValue("productId"), req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utilities.RespondOK(w, http.StatusOK, "Cart updated successfully", line)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFromCart(r.Context(), r.PathValue("userId"), r.PathValue("productId")); err != nil {
		h.respondError(w, err)
		return
	}
	utilities.RespondOK(w, http.StatusOK, "Product removed from cart successfully", nil)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		utilities.RespondErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUserNotFound):
		utilities.RespondErr(w, http.StatusNotFound, "User does not exist")
	case errors.Is(err, errs.ErrProductNotFound):
		utilities.RespondErr(w, http.StatusNotFound, "Product does not exist")
	case errors.Is(err, errs.ErrCartLineNotFound):
		utilities.RespondErr(w, http.StatusNotFound, "Cart line does not exist")
	default:
		h.logger.Errorw("cart operation failed", "err", err)
		utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
	}
}
