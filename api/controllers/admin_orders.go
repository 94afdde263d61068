package controllers

import (
	"net/http"

	"github.com/jvboschetti/acai-storefront/api/responses"
	"github.com/jvboschetti/acai-storefront/api/validators"
	"github.com/jvboschetti/acai-storefront/internal/orders"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
)

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// AdminListOrders returns every order newest-first with line items.
func AdminListOrders(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"orders": list,
			"count":  len(list),
		})
	}
}

// AdminUpdateOrderStatus applies a confirm or cancel decision.
func AdminUpdateOrderStatus(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.ParseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req orderStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParsePaymentStatus(req.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}
		if err := svc.UpdateStatus(r.Context(), orderID, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"order_id": orderID.String(),
			"status":   status.String(),
		})
	}
}
