package main

import (
	"net/http"

	"github.com/d3vpratap/zeotap/contracts"
	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

const sheetPath = "/sheets/:sheet_id"
const cellPath = sheetPath + "/cells/:cell_id"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/sheets", controller.CreateSheetAction)

	apiRouterGroup.GET(sheetPath, controller.GetSheetAction)
	apiRouterGroup.PUT(sheetPath, controller.ImportSheetAction)
	apiRouterGroup.GET(sheetPath+"/export", controller.ExportSheetAction)
	apiRouterGroup.POST(sheetPath+"/structure", controller.StructureAction)
	apiRouterGroup.POST(sheetPath+"/dedupe", controller.DedupeAction)
	apiRouterGroup.POST(sheetPath+"/replace", controller.ReplaceAction)

	apiRouterGroup.POST(cellPath, controller.SetCellAction)
	apiRouterGroup.GET(cellPath, controller.GetCellAction)
	apiRouterGroup.POST(cellPath+"/format", controller.FormatCellAction)
	apiRouterGroup.POST(cellPath+"/subscribe", controller.SubscribeAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
