package http

import (
	"net/http"
	"time"

	"github.com/krishnaagrawal0402/gamehelper/internal/store"
	"github.com/krishnaagrawal0402/gamehelper/pkg/gamesdk"
	"github.com/krishnaagrawal0402/gamehelper/pkg/httpx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/jwtx"
	"github.com/krishnaagrawal0402/gamehelper/pkg/slogx"
)

// LivezHandler reports process liveness.
//
//	@Summary		Liveness check
//	@Description	Returns ok while the process is running. Carries the build version and uptime.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	gamesdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, gamesdk.HealthResponse{
			Status:  "ok",
			Version: version,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		})
	})
}

// ReadyzHandler reports whether the service can do useful work: the database
// answers and a signing key is loaded.
//
//	@Summary		Readiness check
//	@Description	Returns ok once the database answers and a session signing key is loaded.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	gamesdk.HealthResponse
//	@Failure		503	{object}	gamesdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		status := "ok"
		code := http.StatusOK

		if err := st.Ping(ctx); err != nil {
			log.Warn("readiness: database unreachable", "err", err)
			status = "unavailable"
			code = http.StatusServiceUnavailable
		} else if !keys.IsReady() {
			log.Warn("readiness: no signing key loaded")
			status = "unavailable"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, gamesdk.HealthResponse{
			Status:  status,
			Version: version,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		})
	})
}

// JWKSHandler publishes the public signing keys so session tokens can be
// verified out of process.
//
//	@Summary		JWKS
//	@Description	Returns the public keys used to sign session tokens.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	jwtx.JWKS
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	})
}
