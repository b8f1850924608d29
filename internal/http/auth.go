package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/krishnaagrawal0402/gamehelper/internal/service"
	"github.com/krishnaagrawal0402/gamehelper/pkg/gamesdk"
	"github.com/krishnaagrawal0402/gamehelper/pkg/httpx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/slogx"
)

type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleRegister creates a new account with its preference profile.
//
//	@Summary		Register an account
//	@Description	Creates a user account together with the intake preference profile. Both are written atomically; a duplicate username leaves no partial state behind.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gamesdk.RegisterRequest	true	"Account and preference fields"
//	@Success		201		{object}	gamesdk.RegisterResponse
//	@Failure		400		{object}	gamesdk.ErrorResponse	"Validation failure, details name the fields"
//	@Failure		409		{object}	gamesdk.ErrorResponse	"Username already exists"
//	@Failure		500		{object}	gamesdk.ErrorResponse
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gamesdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gamesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AccountService.Register(ctx, service.RegisterInput{
		Username:         req.Username,
		Password:         req.Password,
		FullName:         req.FullName,
		Age:              req.Age,
		Gender:           req.Gender,
		ContactInfo:      req.ContactInfo,
		PrimaryCaregiver: req.PrimaryCaregiver,
		Preferences:      fromProfilePayload(req.Profile),
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			gamesdk.ErrValidation.WithDetails(verr.Fields).WriteError(w)
		case errors.Is(err, service.ErrDuplicateUsername):
			gamesdk.ErrDuplicateUsername.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			gamesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gamesdk.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// HandleLogin verifies credentials and mints a session token.
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for a bearer session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gamesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	gamesdk.SessionResponse
//	@Failure		401		{object}	gamesdk.ErrorResponse	"Invalid username or password"
//	@Failure		500		{object}	gamesdk.ErrorResponse
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gamesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gamesdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		gamesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, expiresIn, err := h.AccountService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			gamesdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		gamesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gamesdk.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(expiresIn.Seconds()),
	})
}
