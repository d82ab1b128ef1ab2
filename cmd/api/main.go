package main

import (
	_ "debt_reconciler/docs"
	"debt_reconciler/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Debt Reconciliation API
// @version         1.0
// @description     Reconciles debts, payment plans and payments into per-debt derived records.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
