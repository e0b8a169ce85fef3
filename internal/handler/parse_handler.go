package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cardlens/internal/service"
)

// ParseHandler handles statement upload and job status endpoints.
type ParseHandler struct {
	parseService service.ParseService
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService service.ParseService) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

// Upload handles POST /api/v1/parse/upload
// @Summary Upload a statement for parsing
// @Description Accepts one PDF credit card statement and queues it for parsing
// @Tags parse
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement PDF"
// @Param force_ocr formData bool false "Skip structural extraction and go straight to OCR"
// @Success 202 {object} APIResponse "Job queued"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Router /parse/upload [post]
func (h *ParseHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	forceOCR, _ := strconv.ParseBool(c.PostForm("force_ocr"))

	job, err := h.parseService.Upload(c.Request.Context(), service.UploadInput{
		File:     file,
		Header:   header,
		ForceOCR: forceOCR,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, job)
}

// UploadBatch handles POST /api/v1/parse/batch
// @Summary Upload a batch of statements
// @Description Accepts up to 10 PDF statements and queues a parse job for each
// @Tags parse
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Statement PDFs"
// @Success 202 {object} APIResponse "Jobs queued"
// @Failure 400 {object} APIResponse "No files or too many files"
// @Router /parse/batch [post]
func (h *ParseHandler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	headers := form.File["files"]
	forceOCR, _ := strconv.ParseBool(c.PostForm("force_ocr"))

	inputs := make([]service.UploadInput, 0, len(headers))
	for _, hdr := range headers {
		f, err := hdr.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not open uploaded file "+hdr.Filename)
			return
		}
		defer func() { _ = f.Close() }()
		inputs = append(inputs, service.UploadInput{File: f, Header: hdr, ForceOCR: forceOCR})
	}

	jobs, err := h.parseService.UploadBatch(c.Request.Context(), inputs)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, jobs)
}

// Delete handles DELETE /api/v1/parse/jobs/:id
// @Summary Delete a parse job
// @Description Removes the job, its parsed result, and the stored document
// @Tags parse
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse "Job not found"
// @Router /parse/jobs/{id} [delete]
func (h *ParseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "job id must be a UUID")
		return
	}

	if err := h.parseService.DeleteJob(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// Status handles GET /api/v1/parse/status/:id
// @Summary Get parse job status
// @Tags parse
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse "Job not found"
// @Router /parse/status/{id} [get]
func (h *ParseHandler) Status(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "job id must be a UUID")
		return
	}

	job, err := h.parseService.GetJob(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, job)
}
