package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/krishnaagrawal0402/gamehelper/internal/service"
	"github.com/krishnaagrawal0402/gamehelper/pkg/gamesdk"
	"github.com/krishnaagrawal0402/gamehelper/pkg/httpx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet returns the authenticated user's joined profile.
//
//	@Summary		Get profile
//	@Description	Returns the account fields and the full preference profile of the authenticated user.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gamesdk.ProfileResponse
//	@Failure		401	{object}	gamesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		404	{object}	gamesdk.ErrorResponse	"User no longer exists"
//	@Failure		500	{object}	gamesdk.ErrorResponse
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		gamesdk.ErrInvalidToken.WriteError(w)
		return
	}

	profile, err := h.ProfileService.GetProfile(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			gamesdk.ErrUserNotFound.WriteError(w)
			return
		}
		log.Error("failed to load profile", "username", username, "err", err)
		gamesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gamesdk.ProfileResponse{
		UserID:           profile.User.ID,
		Username:         profile.User.Username,
		FullName:         profile.User.FullName,
		Age:              profile.User.Age,
		Gender:           profile.User.Gender,
		ContactInfo:      profile.User.ContactInfo,
		PrimaryCaregiver: profile.User.PrimaryCaregiver,
		CreatedAt:        profile.User.CreatedAt.UTC().Format(time.RFC3339),
		Profile:          toProfilePayload(profile.Preferences),
	})
}

// HandlePatch applies a partial preference update.
//
//	@Summary		Update profile
//	@Description	Applies a partial set of preference-field updates. Field names outside the known set reject the whole request; nothing is applied partially.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	gamesdk.UpdateProfileRequest	true	"Field name to new value"
//	@Success		204		"Profile updated"
//	@Failure		400		{object}	gamesdk.ErrorResponse	"Unknown field name or empty update"
//	@Failure		401		{object}	gamesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		404		{object}	gamesdk.ErrorResponse	"User no longer exists"
//	@Failure		500		{object}	gamesdk.ErrorResponse
//	@Router			/v1/profile [patch].
func (h *ProfileHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		gamesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req gamesdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gamesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.ProfileService.UpdateProfile(ctx, username, req.Fields)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			gamesdk.ErrValidation.WithDetails(verr.Fields).WriteError(w)
		case errors.Is(err, service.ErrUnknownField):
			gamesdk.ErrValidation.WithDetails(map[string]string{
				"fields": "contains an unknown field name",
			}).WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			gamesdk.ErrUserNotFound.WriteError(w)
		default:
			log.Error("failed to update profile", "username", username, "err", err)
			gamesdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
