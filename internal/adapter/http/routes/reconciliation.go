package routes

import (
	"debt_reconciler/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDebts           = "/debts"
	PathReconciliations = "/reconciliations"
)

func addReconciliationRoutes(rg *gin.RouterGroup, debtHandler *handlers.DebtHandler, reconciliationHandler *handlers.ReconciliationHandler) {
	debts := rg.Group(PathDebts)
	{
		debts.GET("", debtHandler.ListDebts)
	}

	reconciliations := rg.Group(PathReconciliations)
	{
		reconciliations.POST("", reconciliationHandler.CreateReconciliation)
		reconciliations.GET("/:id", reconciliationHandler.GetReconciliation)
	}
}
