package handlers

import (
	"errors"
	"log"
	"net/http"

	response "debt_reconciler/internal/adapter/http/dto/response"
	"debt_reconciler/internal/domain/entities"
	"debt_reconciler/internal/usecase"
	"debt_reconciler/pkg"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler triggers reconciliation runs and serves stored
// snapshots.
type ReconciliationHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewReconciliationHandler(uc usecase.IReconcileUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// CreateReconciliation godoc
// @Summary      Run a reconciliation and persist the snapshot
// @Tags         reconciliations
// @Produce      json
// @Success      200 {object} response.ReconciliationResponse
// @Failure      422 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /reconciliations [post]
func (h *ReconciliationHandler) CreateReconciliation(c *gin.Context) {
	log.Printf("[reconciliations][handler] create start")

	run, err := h.usecase.RunAndStore(c.Request.Context())
	if err != nil {
		log.Printf("[reconciliations][handler] create failed err=%v", err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reconciliations][handler] create success id=%s debts=%d", run.ID, len(run.Records))

	c.JSON(http.StatusOK, response.FromReconciliation(run))
}

// GetReconciliation godoc
// @Summary      Fetch a persisted reconciliation snapshot
// @Tags         reconciliations
// @Produce      json
// @Param        id path string true "Reconciliation id"
// @Success      200 {object} response.ReconciliationResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /reconciliations/{id} [get]
func (h *ReconciliationHandler) GetReconciliation(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[reconciliations][handler] get start id=%s", id)

	run, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[reconciliations][handler] get failed id=%s err=%v", id, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconciliation(run))
}

func mapReconcileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReconciliationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReconciliationNotFound):
		return pkg.NewDomainErrorSimple("RECONCILIATION_NOT_FOUND", "Reconciliation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownReference), errors.Is(err, usecase.ErrMalformedRecord), errors.Is(err, entities.ErrDuplicatePlanAssignment):
		return pkg.NewDomainErrorSimple("INCONSISTENT_SOURCE_DATA", "Source data failed reconciliation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSourceFetchFailed):
		return pkg.NewDomainErrorSimple("UPSTREAM_FETCH_FAILED", "Failed fetching source data", http.StatusBadGateway)
	case errors.Is(err, entities.ErrScheduleOverflow):
		return pkg.NewDomainError("SCHEDULE_OVERFLOW", "Schedule computation exceeded its step bound", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
