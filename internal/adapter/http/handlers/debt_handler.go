package handlers

import (
	"log"
	"net/http"

	response "debt_reconciler/internal/adapter/http/dto/response"
	"debt_reconciler/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DebtHandler serves the reconciled debt records.
type DebtHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewDebtHandler(uc usecase.IReconcileUseCase) *DebtHandler {
	return &DebtHandler{usecase: uc}
}

// ListDebts godoc
// @Summary      Reconcile and list debts
// @Description  Fetches the debts, payment plans and payments streams, reconciles them and returns one derived record per debt.
// @Tags         debts
// @Produce      json
// @Success      200 {array} response.DebtResponse
// @Failure      422 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /debts [get]
func (h *DebtHandler) ListDebts(c *gin.Context) {
	log.Printf("[debts][handler] list start")

	run, err := h.usecase.Reconcile(c.Request.Context())
	if err != nil {
		log.Printf("[debts][handler] list failed err=%v", err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[debts][handler] list success debts=%d", len(run.Records))

	c.JSON(http.StatusOK, response.FromReconciledDebts(run.Records))
}
