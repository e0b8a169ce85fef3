package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardlens/internal/domain"
	"cardlens/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartBody(t *testing.T, field string, files map[string]string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for name, content := range files {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestUploadHandler_Accepted(t *testing.T) {
	svc := new(mocks.MockParseService)
	job := &domain.ParseJob{ID: uuid.New(), Filename: "stmt.pdf", Status: domain.JobStatusPending}
	svc.On("Upload", mock.Anything, mock.Anything).Return(job, nil)

	r := gin.New()
	r.POST("/upload", NewParseHandler(svc).Upload)

	body, ct := multipartBody(t, "file", map[string]string{"stmt.pdf": "%PDF-1.4"}, map[string]string{"force_ocr": "true"})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	svc := new(mocks.MockParseService)
	r := gin.New()
	r.POST("/upload", NewParseHandler(svc).Upload)

	body, ct := multipartBody(t, "file", nil, map[string]string{"force_ocr": "false"})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadHandler_UnsupportedType(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("Upload", mock.Anything, mock.Anything).Return(nil, domain.ErrUnsupportedFileType)

	r := gin.New()
	r.POST("/upload", NewParseHandler(svc).Upload)

	body, ct := multipartBody(t, "file", map[string]string{"stmt.txt": "plain text"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestUploadBatchHandler_Accepted(t *testing.T) {
	svc := new(mocks.MockParseService)
	jobs := []domain.ParseJob{
		{ID: uuid.New(), Filename: "a.pdf"},
		{ID: uuid.New(), Filename: "b.pdf"},
	}
	svc.On("UploadBatch", mock.Anything, mock.Anything).Return(jobs, nil)

	r := gin.New()
	r.POST("/batch", NewParseHandler(svc).UploadBatch)

	body, ct := multipartBody(t, "files", map[string]string{"a.pdf": "%PDF-1.4", "b.pdf": "%PDF-1.4"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/batch", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	svc.AssertExpectations(t)
}

func TestStatusHandler(t *testing.T) {
	svc := new(mocks.MockParseService)
	id := uuid.New()
	job := &domain.ParseJob{ID: id, Status: domain.JobStatusCompleted, Progress: 100}
	svc.On("GetJob", mock.Anything, id).Return(job, nil)

	r := gin.New()
	r.GET("/status/:id", NewParseHandler(svc).Status)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestStatusHandler_InvalidID(t *testing.T) {
	r := gin.New()
	r.GET("/status/:id", NewParseHandler(new(mocks.MockParseService)).Status)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusHandler_NotFound(t *testing.T) {
	svc := new(mocks.MockParseService)
	id := uuid.New()
	svc.On("GetJob", mock.Anything, id).Return(nil, domain.ErrJobNotFound)

	r := gin.New()
	r.GET("/status/:id", NewParseHandler(svc).Status)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "JOB_NOT_FOUND", resp.Error.Code)
}

func TestDeleteHandler(t *testing.T) {
	svc := new(mocks.MockParseService)
	id := uuid.New()
	svc.On("DeleteJob", mock.Anything, id).Return(nil)

	r := gin.New()
	r.DELETE("/jobs/:id", NewParseHandler(svc).Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/jobs/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	svc := new(mocks.MockParseService)
	id := uuid.New()
	svc.On("DeleteJob", mock.Anything, id).Return(domain.ErrJobNotFound)

	r := gin.New()
	r.DELETE("/jobs/:id", NewParseHandler(svc).Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/jobs/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "JOB_NOT_FOUND", resp.Error.Code)
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	r := gin.New()
	r.DELETE("/jobs/:id", NewParseHandler(new(mocks.MockParseService)).Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/jobs/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
