package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/gennaskitchen/service-api-go/internal/errs"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// Handler exposes HTTP endpoints for user operations (register / login).
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRequest request body for the register endpoint.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid register payload", "err", err)
		utilities.RespondErr(w, http.StatusBadRequest, "invalid payload")
		return
	}
	pub, err := h.svc.Register(r.Context(), req.FirstName, req.Surname, req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			utilities.RespondErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrDuplicateEmail):
			utilities.RespondErr(w, http.StatusConflict, "User with that email already exist")
		case errors.Is(err, errs.ErrDuplicateUsername):
			utilities.RespondErr(w, http.StatusConflict, "User with that username already exist")
		default:
			h.logger.Errorw("register failed", "err", err)
			utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
		}
		return
	}
	utilities.RespondOK(w, http.StatusCreated, "You have registered successfully", pub)
}

// LoginRequest login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the public profile plus a signed session token.
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid login payload", "err", err)
		utilities.RespondErr(w, http.StatusBadRequest, "invalid payload")
		return
	}
	profile, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			utilities.RespondErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrUserNotFound):
			utilities.RespondErr(w, http.StatusNotFound, "User does not exist")
		case errors.Is(err, errs.ErrWrongPassword):
			utilities.RespondErr(w, http.StatusBadRequest, "You have provided wrong password")
		default:
			h.logger.Errorw("login failed", "err", err)
			utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
		}
		return
	}
	token, err := SessionToken(profile)
	if err != nil {
		h.logger.Errorw("sign session token", "err", err)
		utilities.RespondErr(w, http.StatusInternalServerError, errs.ErrStorageUnavailable.Error())
		return
	}
	resp := LoginResponse{ID: profile.ID, Username: profile.Username, Email: profile.Email, Token: token}
	utilities.RespondOK(w, http.StatusOK, "You have logged in successfully", resp)
}
