package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/d3vpratap/zeotap/contracts"
	"github.com/gin-gonic/gin"
	"go.alis.build/alog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	XlsxExporter      contracts.XlsxExporter
	canonicalizer     *Canonicalizer
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type CreateSheetRequest struct {
	Name    string `json:"name"`
	Rows    int    `json:"rows" binding:"min=0"`
	Columns int    `json:"columns" binding:"min=0"`
}

type SetCellRequest struct {
	Text *string `json:"text" binding:"required"`
}

type FormatCellRequest struct {
	Format string `json:"format" binding:"required"`
}

type StructureRequest struct {
	Action contracts.StructureAction `json:"action" binding:"required"`
	Index  *int                      `json:"index" binding:"required"`
}

type DedupeRequest struct {
	Range string `json:"range" binding:"required"`
}

type ReplaceRequest struct {
	Find    string `json:"find" binding:"required"`
	Replace string `json:"replace"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

func NewApiController(
	sheetRepository contracts.SheetRepository,
	webhookDispatcher contracts.WebhookDispatcher,
	xlsxExporter contracts.XlsxExporter,
) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
		XlsxExporter:      xlsxExporter,
		canonicalizer:     NewCanonicalizer(),
	}
}

func (api *ApiController) CreateSheetAction(c *gin.Context) {
	request := CreateSheetRequest{}

	// an empty body creates a default sheet
	if c.Request.ContentLength != 0 {
		err := c.ShouldBindJSON(&request)
		if err != nil && !errors.Is(err, io.EOF) {
			api.validationError(c, err)
			return
		}
	}

	response, err := api.SheetRepository.CreateSheet(request.Name, request.Rows, request.Columns)
	if err != nil {
		api.error(c, err)
		return
	}

	alog.Infof(c, "sheet %s created (%dx%d)", response.Id, response.Rows, response.Columns)
	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.Snapshot

	err := c.ShouldBindUri(&params)
	if err == nil {
		response, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ImportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.SheetInfo
	var body []byte

	err := c.ShouldBindUri(&params)
	if err == nil {
		body, err = c.GetRawData()
	}
	if err == nil {
		response, err = api.SheetRepository.ImportSheet(params.SheetId, body)
	}

	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ExportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var snapshot *contracts.Snapshot
	buffer := &bytes.Buffer{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		snapshot, err = api.SheetRepository.GetSheet(params.SheetId)
	}
	if err == nil {
		err = api.XlsxExporter.Export(snapshot, buffer)
	}

	if err != nil {
		api.error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", worksheetName(snapshot.Name)+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (api *ApiController) StructureAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := StructureRequest{}

	if !api.bind(c, &params, &request) {
		return
	}

	response, err := api.SheetRepository.ChangeStructure(params.SheetId, request.Action, *request.Index)
	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) DedupeAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := DedupeRequest{}

	if !api.bind(c, &params, &request) {
		return
	}

	removed, err := api.SheetRepository.RemoveDuplicates(params.SheetId, request.Range)
	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	}
}

func (api *ApiController) ReplaceAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := ReplaceRequest{}

	if !api.bind(c, &params, &request) {
		return
	}

	replaced, err := api.SheetRepository.FindAndReplace(params.SheetId, request.Find, request.Replace)
	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"replaced": replaced})
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	if !api.bind(c, &params, &request) {
		return
	}

	response, err := api.SheetRepository.SetCell(params.SheetId, params.CellId, *request.Text)
	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.CellView

	err := c.ShouldBindUri(&params)
	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) FormatCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := FormatCellRequest{}

	if !api.bind(c, &params, &request) {
		return
	}

	response, err := api.SheetRepository.FormatCell(params.SheetId, params.CellId, request.Format)
	if err != nil {
		api.error(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

// SubscribeAction registers a webhook for value changes of a cell. The cell
// must exist; the url is called with the cell view after every change.
func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	if !api.bind(c, &params, &request) {
		return
	}

	cell, err := api.SheetRepository.GetCell(params.SheetId, params.CellId)
	if err != nil {
		api.error(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(api.canonicalizer.CanonicalizeSheetId(params.SheetId), cell.Address, request.WebhookUrl)
	alog.Infof(c, "webhook subscribed to %s/%s", params.SheetId, cell.Address)

	c.JSON(http.StatusCreated, cell)
}

func (api *ApiController) bind(c *gin.Context, params any, request any) bool {
	err := c.ShouldBindUri(params)
	if err == nil {
		err = c.ShouldBindJSON(request)
	}

	if err != nil {
		api.validationError(c, err)
		return false
	}
	return true
}

func (api *ApiController) validationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func (api *ApiController) error(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		alog.Errorf(c, "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, contracts.SheetNotFoundError),
		errors.Is(err, contracts.AddressNotFoundError),
		errors.Is(err, contracts.CellOutOfRangeError):
		return http.StatusNotFound

	case errors.Is(err, contracts.SnapshotError),
		errors.Is(err, contracts.InvalidFormatError),
		errors.Is(err, contracts.InvalidStructureActionError),
		errors.Is(err, contracts.InvalidRangeError),
		errors.Is(err, contracts.InvalidSheetSizeError):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
