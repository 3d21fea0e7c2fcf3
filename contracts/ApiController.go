package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	CreateSheetAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	ImportSheetAction(c *gin.Context)
	ExportSheetAction(c *gin.Context)
	StructureAction(c *gin.Context)
	DedupeAction(c *gin.Context)
	ReplaceAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	FormatCellAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
