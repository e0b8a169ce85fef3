package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cardlens/internal/export"
	"cardlens/internal/service"
)

// ResultsHandler serves parsed statement results and exports.
type ResultsHandler struct {
	parseService service.ParseService
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(parseService service.ParseService) *ResultsHandler {
	return &ResultsHandler{parseService: parseService}
}

// GetByJob handles GET /api/v1/parse/results/:id
// @Summary Get the parse result for a job
// @Tags results
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse "Job or result not found"
// @Router /parse/results/{id} [get]
func (h *ResultsHandler) GetByJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "job id must be a UUID")
		return
	}

	rec, err := h.parseService.GetResult(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// List handles GET /api/v1/results
// @Summary List parsed statements
// @Tags results
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} APIResponse
// @Router /results [get]
func (h *ResultsHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	recs, total, err := h.parseService.ListResults(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/results/export/csv
// @Summary Export parsed statements as CSV
// @Tags results
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /results/export/csv [get]
func (h *ResultsHandler) ExportCSV(c *gin.Context) {
	recs, _, err := h.parseService.ListResults(c.Request.Context(), 0, exportLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="statements.csv"`)
	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}

	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRecords(recs); err != nil {
		return
	}
	_ = w.Flush()
}

// ExportXLSX handles GET /api/v1/results/export/xlsx
// @Summary Export parsed statements as an Excel workbook
// @Tags results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX file"
// @Router /results/export/xlsx [get]
func (h *ResultsHandler) ExportXLSX(c *gin.Context) {
	recs, _, err := h.parseService.ListResults(c.Request.Context(), 0, exportLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="statements.xlsx"`)
	if err := export.WriteXLSX(c.Writer, recs); err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "could not build workbook")
	}
}

const exportLimit = 10000

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
