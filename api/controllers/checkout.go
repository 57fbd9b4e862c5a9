package controllers

import (
	"net/http"

	"github.com/nextplayhq/nextplay-backend/api/middleware"
	"github.com/nextplayhq/nextplay-backend/api/responses"
	"github.com/nextplayhq/nextplay-backend/api/validators"
	"github.com/nextplayhq/nextplay-backend/internal/orders"
	"github.com/nextplayhq/nextplay-backend/pkg/logger"
	"github.com/nextplayhq/nextplay-backend/pkg/metrics"
)

// SubmitOrder turns the caller's cart into a persisted order.
func SubmitOrder(svc orders.Service, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.CartTokenFromContext(r.Context())

		var payload orders.SubmitInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), token, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncOrderSubmitted()
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
