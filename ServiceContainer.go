package main

import (
	"time"

	"github.com/d3vpratap/zeotap/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

const DatabaseOpenTimeout = time.Second

type ServiceContainer struct {
	Database          *bbolt.DB
	FormulaEvaluator  contracts.FormulaEvaluator
	WorkbookFactory   *WorkbookFactory
	WebhookDispatcher contracts.WebhookDispatcher
	SheetRepository   contracts.SheetRepository
	XlsxExporter      contracts.XlsxExporter
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config AppConfig) (container ServiceContainer, err error) {
	container.FormulaEvaluator = NewFormulaEvaluator(NewRangeResolver(), NewArithmeticEvaluator())

	recalculator, err := NewRecalculator(container.FormulaEvaluator, config.RecalculationMode, config.MaxRecalculationPasses)
	if err != nil {
		return
	}

	container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: DatabaseOpenTimeout})
	if err != nil {
		return
	}

	container.WorkbookFactory = NewWorkbookFactory(container.FormulaEvaluator, recalculator)
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRepository = NewSheetRepository(
		container.Database, NewSnapshotJsonSerializer(), NewCanonicalizer(), container.WorkbookFactory, container.WebhookDispatcher,
	)
	container.XlsxExporter = NewXlsxExporter()
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher, container.XlsxExporter)

	container.Router = SetupRouter(container.ApiController)

	return
}
