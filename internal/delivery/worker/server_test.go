package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poolscout/config"
	deliverycontext "poolscout/internal/delivery/context"
	"poolscout/internal/delivery/worker/handler"
	"poolscout/internal/domain/entity"
	domainerrors "poolscout/internal/domain/errors"
	mockUsecase "poolscout/internal/mocks/usecase"
	"poolscout/internal/transform/poolinfer"
	"poolscout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockRunUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runUC := mockUsecase.NewMockRunUsecase(t)

	e := newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		RunHandler:      handler.NewRunHandler(handler.RunHandlerParams{RunUC: runUC, Logger: logger}),
		ClassifyHandler: handler.NewClassifyHandler(poolinfer.New(0)),
	})

	return e, runUC
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_Metrics(t *testing.T) {
	e, _ := newTestEcho(t)

	serve(e, http.MethodGet, "/health", "", nil)
	rec := serve(e, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "poolscout_http_requests_total")
}

func TestServer_KeepsClientRequestID(t *testing.T) {
	e, runUC := newTestEcho(t)
	runUC.EXPECT().Trigger(mock.Anything, entity.PipelineStage, usecase.RunRequest{}).
		Return("", domainerrors.ErrRunInProgress.WithDetails("stage run run-0")).Once()

	rec := serve(e, http.MethodPost, "/runs/stage", "", map[string]string{deliverycontext.HeaderXRequestID: "req-42"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{
		"error": {"code": "RUN_IN_PROGRESS", "message": "a run of this pipeline is already in progress", "details": "stage run run-0"},
		"meta": {"request_id": "req-42"}
	}`, rec.Body.String())
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_RejectsOversizedBody(t *testing.T) {
	e, _ := newTestEcho(t)

	body := `{"description":"` + strings.Repeat("pool ", 400) + `"}`
	rec := serve(e, http.MethodPost, "/classify", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
