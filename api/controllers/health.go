package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/jvboschetti/acai-storefront/api/responses"
	"github.com/jvboschetti/acai-storefront/pkg/config"
	"github.com/jvboschetti/acai-storefront/pkg/db"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
	"github.com/jvboschetti/acai-storefront/pkg/redis"
)

const healthPingTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Acai-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datasources. The database is required; Redis
// only degrades realtime fan-out, so it reports but never fails
// readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Acai-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		checks := map[string]string{"db": "ok"}
		ready := true

		if dbP == nil {
			checks["db"] = "not configured"
			ready = false
		} else if err := dbP.Ping(ctx); err != nil {
			logg.Error(ctx, "readiness db ping failed", err)
			checks["db"] = "unreachable"
			ready = false
		}

		if redisP != nil {
			checks["redis"] = "ok"
			if err := redisP.Ping(ctx); err != nil {
				logg.Warn(ctx, "readiness redis ping failed")
				checks["redis"] = "unreachable"
			}
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": state,
			"checks": checks,
		})
	}
}
