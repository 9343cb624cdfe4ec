package handler

import (
	"net/http"

	"poolscout/internal/delivery/worker/response"
	"poolscout/internal/delivery/worker/validator"
	"poolscout/internal/domain/entity"
	"poolscout/internal/transform/poolinfer"

	"github.com/labstack/echo/v4"
)

// ClassifyHandler exposes the pool classifier to operators.
type ClassifyHandler struct {
	classifier *poolinfer.Classifier
}

// NewClassifyHandler is the constructor for ClassifyHandler
func NewClassifyHandler(classifier *poolinfer.Classifier) *ClassifyHandler {
	return &ClassifyHandler{classifier: classifier}
}

// ClassifyRequest carries one listing description.
type ClassifyRequest struct {
	Description string `json:"description" validate:"required,max=20000"`
}

// ClassifyResponse is the verdict with the signals behind it.
type ClassifyResponse struct {
	PoolFlag     bool                `json:"poolFlag"`
	PoolType     entity.PoolType     `json:"poolType"`
	Category     entity.PoolCategory `json:"category"`
	Construction entity.Construction `json:"construction"`
	Confidence   float64             `json:"confidence"`
	Evidence     string              `json:"evidence"`
}

// Classify runs the classifier on a description.
func (h *ClassifyHandler) Classify(c echo.Context) error {
	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid classify request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Fields(err))
	}

	analysis := h.classifier.Analyze(req.Description)

	return response.Success(c, http.StatusOK, ClassifyResponse{
		PoolFlag:     analysis.Verdict.Flag,
		PoolType:     analysis.Verdict.Type,
		Category:     analysis.Category,
		Construction: analysis.Construction,
		Confidence:   analysis.Confidence,
		Evidence:     analysis.Evidence,
	})
}
