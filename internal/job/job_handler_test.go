package job_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-erp/internal/job"
	joberrors "go-erp/internal/job/errors"
	jobMock "go-erp/internal/job/mock"
	"go-erp/internal/shared/search"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupHandler(t *testing.T) (*gin.Engine, *jobMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := jobMock.NewMockService(ctrl)
	h := job.NewHandler(svc)

	r := gin.New()
	r.POST("/jobs/active/search", h.SearchActive)
	r.POST("/jobs/done/search", h.SearchDone)
	r.GET("/jobs/:id/delivery-note", h.DeliveryNote)
	r.POST("/jobs/:id/complete", h.Complete)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Complete(t *testing.T) {
	t.Run("empty body completes now", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().
			Complete(gomock.Any(), int64(11), job.CompleteJobRequest{}).
			Return(job.JobResponse{ID: 11, Complete: true}, nil)

		w := doJSON(r, http.MethodPost, "/jobs/11/complete", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("drop-off date is forwarded", func(t *testing.T) {
		r, svc := setupHandler(t)
		dropOff := time.Date(2024, 5, 1, 16, 0, 0, 0, time.UTC)
		svc.EXPECT().
			Complete(gomock.Any(), int64(11), job.CompleteJobRequest{DropOffDate: &dropOff}).
			Return(job.JobResponse{ID: 11, Complete: true, DropOffDate: &dropOff}, nil)

		w := doJSON(r, http.MethodPost, "/jobs/11/complete", map[string]any{"dropOffDate": dropOff})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already complete is a conflict", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().
			Complete(gomock.Any(), int64(11), gomock.Any()).
			Return(job.JobResponse{}, joberrors.ErrJobAlreadyComplete)

		w := doJSON(r, http.MethodPost, "/jobs/11/complete", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
	})
}

func TestHandler_Search(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().
		SearchDone(gomock.Any(), &job.JobSearchCriteria{}).
		Return(search.PageResponse[job.JobTableInfo]{Content: []job.JobTableInfo{}}, nil)

	w := doJSON(r, http.MethodPost, "/jobs/done/search", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeliveryNote(t *testing.T) {
	t.Run("streams the pdf as an attachment", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().
			DeliveryNote(gomock.Any(), int64(11)).
			Return([]byte("%PDF-1.3 test"), "delivery-note-ORD-000007.pdf", nil)

		w := doJSON(r, http.MethodGet, "/jobs/11/delivery-note", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="delivery-note-ORD-000007.pdf"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.3 test", w.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := doJSON(r, http.MethodGet, "/jobs/abc/delivery-note", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
