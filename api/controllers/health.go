package controllers

import (
	"context"
	"net/http"

	"github.com/nextplayhq/nextplay-backend/api/responses"
	"github.com/nextplayhq/nextplay-backend/pkg/config"
	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
	"github.com/nextplayhq/nextplay-backend/pkg/logger"
)

type pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NextPlay-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when both backing stores answer a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, db pinger, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NextPlay-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if db == nil {
			checks["postgres"] = "not configured"
			healthy = false
		} else if err := db.Ping(r.Context()); err != nil {
			checks["postgres"] = "unreachable"
			healthy = false
		} else {
			checks["postgres"] = "ok"
		}

		if cache == nil {
			checks["redis"] = "not configured"
			healthy = false
		} else if err := cache.Ping(r.Context()); err != nil {
			checks["redis"] = "unreachable"
			healthy = false
		} else {
			checks["redis"] = "ok"
		}

		if !healthy {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "service not ready").WithDetails(checks))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
