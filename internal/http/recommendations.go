package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/krishnaagrawal0402/gamehelper/internal/service"
	"github.com/krishnaagrawal0402/gamehelper/pkg/gamesdk"
	"github.com/krishnaagrawal0402/gamehelper/pkg/httpx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/slogx"
)

type RecommendationsHandler struct {
	RecommendService *service.RecommendService
}

// ServeHTTP returns the catalog filtered by the supplied criteria.
//
//	@Summary		Get recommendations
//	@Description	Returns catalog entries matching every supplied filter, in catalog order. An empty list is a valid answer. Platform matching is exact set membership on the game's platform tags.
//	@Tags			Recommendations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			difficulty		query		string	false	"Difficulty tier (Easy, Medium, Hard)"
//	@Param			platform		query		string	false	"Platform tag, e.g. Web or Mobile"
//	@Param			focus			query		string	false	"Cognitive focus, e.g. Memory"
//	@Param			match_devices	query		bool	false	"Filter by the stored preferred-device list; ignored when platform is set"
//	@Success		200				{object}	gamesdk.RecommendationsResponse
//	@Failure		401				{object}	gamesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500				{object}	gamesdk.ErrorResponse
//	@Router			/v1/recommendations [get].
func (h *RecommendationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		gamesdk.ErrInvalidToken.WriteError(w)
		return
	}

	q := r.URL.Query()
	filters := service.Filters{
		Difficulty:     q.Get("difficulty"),
		Platform:       q.Get("platform"),
		CognitiveFocus: q.Get("focus"),
		MatchDevices:   q.Get("match_devices") == "true",
	}

	games, err := h.RecommendService.Recommend(ctx, username, filters)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			gamesdk.ErrUserNotFound.WriteError(w)
			return
		}
		log.Error("failed to build recommendations", "username", username, "err", err)
		gamesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gamesdk.RecommendationsResponse{
		Games: toGameCards(games),
	})
}

type GamesHandler struct {
	RecommendService *service.RecommendService
}

// ServeHTTP returns the full game catalog.
//
//	@Summary		List games
//	@Description	Returns the complete game catalog in catalog order.
//	@Tags			Recommendations
//	@Produce		json
//	@Success		200	{object}	gamesdk.RecommendationsResponse
//	@Failure		500	{object}	gamesdk.ErrorResponse
//	@Router			/v1/games [get].
func (h *GamesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	games, err := h.RecommendService.ListGames(ctx)
	if err != nil {
		log.Error("failed to list games", "err", err)
		gamesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gamesdk.RecommendationsResponse{
		Games: toGameCards(games),
	})
}

type TipHandler struct {
	RecommendService *service.RecommendService
}

// ServeHTTP returns the tip of the day.
//
//	@Summary		Tip of the day
//	@Description	Returns a short gaming wellbeing tip. The tip is stable within a calendar day.
//	@Tags			Recommendations
//	@Produce		json
//	@Success		200	{object}	gamesdk.TipResponse
//	@Router			/v1/tip [get].
func (h *TipHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, gamesdk.TipResponse{
		Tip: h.RecommendService.TipOfDay(time.Now()),
	})
}
