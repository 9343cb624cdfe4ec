package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "poolscout/internal/delivery/context"
	"poolscout/internal/delivery/worker/response"
	"poolscout/internal/delivery/worker/validator"
	"poolscout/internal/domain/entity"
	"poolscout/internal/transform/area"
	"poolscout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RunHandlerParams holds dependencies for RunHandler, injected by Fx.
type RunHandlerParams struct {
	fx.In

	RunUC  usecase.RunUsecase
	Logger *slog.Logger
}

// RunHandler triggers pipeline runs and reports their summaries.
type RunHandler struct {
	runUC  usecase.RunUsecase
	logger *slog.Logger
}

// NewRunHandler is the constructor for RunHandler
func NewRunHandler(params RunHandlerParams) *RunHandler {
	return &RunHandler{
		runUC:  params.RunUC,
		logger: params.Logger,
	}
}

// TriggerRunRequest is the optional body of POST /runs/:pipeline.
type TriggerRunRequest struct {
	RunID   string `json:"runId" validate:"omitempty,max=64,printascii"`
	Polygon string `json:"polygon"`
}

// TriggerRunResponse is returned when a run was accepted.
type TriggerRunResponse struct {
	Pipeline entity.Pipeline `json:"pipeline"`
	RunID    string          `json:"runId"`
}

// TriggerRun starts a pipeline run. With ?wait=true the run executes within
// the request and its summary is returned; otherwise it runs in the
// background and 202 carries the run id.
func (h *RunHandler) TriggerRun(c echo.Context) error {
	pipeline := entity.Pipeline(c.Param("pipeline"))

	var req TriggerRunRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid run request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Fields(err))
	}

	// Reject a bad polygon now rather than in a background run nobody watches.
	if pipeline == entity.PipelineOSM {
		if _, err := area.Parse(req.Polygon); err != nil {
			return response.AppError(c, err)
		}
	}

	ctx := c.Request().Context()
	runReq := usecase.RunRequest{RunID: req.RunID, Polygon: req.Polygon}

	wait, _ := strconv.ParseBool(c.QueryParam("wait"))
	if wait {
		summary, err := h.runUC.RunNow(ctx, pipeline, runReq)
		if err != nil && summary == nil {
			return response.AppError(c, err)
		}
		if err != nil {
			deliverycontext.LoggerOrDefault(ctx, h.logger).Warn("Pipeline run failed",
				slog.String("pipeline", string(pipeline)),
				slog.Any("error", err),
			)
		}

		return response.Success(c, http.StatusOK, summary)
	}

	runID, err := h.runUC.Trigger(ctx, pipeline, runReq)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, TriggerRunResponse{Pipeline: pipeline, RunID: runID})
}

// LatestRun returns the summary of the pipeline's last finished run.
func (h *RunHandler) LatestRun(c echo.Context) error {
	summary, err := h.runUC.Latest(c.Request().Context(), entity.Pipeline(c.Param("pipeline")))
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
