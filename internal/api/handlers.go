// Package api exposes the classifier over HTTP.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/engine"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/gin-gonic/gin"
)

// MaxBatchSize bounds the number of transactions in one batch request.
const MaxBatchSize = 10000

// PredictRequest is one transaction as posted by clients. Both the English
// field names and the bank export's French ones are accepted.
type PredictRequest struct {
	Amount      any    `json:"amount"`
	Montant     any    `json:"montant"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Sense       string `json:"sense"`
	Sens        string `json:"sens"`
}

// Input converts the request into a classifier input.
func (r PredictRequest) Input() model.TransactionInput {
	in := model.TransactionInput{
		Date:        r.Date,
		Type:        r.Type,
		Description: r.Description,
		Amount:      r.Amount,
		Sense:       model.Sense(r.Sense),
	}
	if in.Amount == nil {
		in.Amount = r.Montant
	}
	if in.Sense == "" {
		in.Sense = model.Sense(r.Sens)
	}
	return in
}

// BatchRequest carries several transactions.
type BatchRequest struct {
	Transactions []PredictRequest `json:"transactions"`
}

// BatchResponse holds results in request order.
type BatchResponse struct {
	Results []model.ClassificationResult `json:"results"`
}

// HealthResponse reports readiness.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Rules       int    `json:"rules"`
}

// Handler serves classification requests from a shared engine.
type Handler struct {
	Engine *engine.Engine
	Logger *slog.Logger
}

// Predict classifies a single transaction.
func (h *Handler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result := h.Engine.Classify(c.Request.Context(), req.Input())
	h.Logger.Debug("Classified transaction",
		"method", result.Method,
		"category", result.Category,
		"rule_id", result.RuleIDOrEmpty())

	c.JSON(http.StatusOK, result)
}

// PredictBatch classifies several transactions concurrently.
func (h *Handler) PredictBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Transactions) > MaxBatchSize {
		BadRequest(c, fmt.Sprintf("Too many transactions: %d (max %d)", len(req.Transactions), MaxBatchSize))
		return
	}

	inputs := make([]model.TransactionInput, len(req.Transactions))
	for i, r := range req.Transactions {
		inputs[i] = r.Input()
	}

	results, err := h.Engine.ClassifyAll(c.Request.Context(), inputs, nil)
	if err != nil {
		if errors.Is(err, common.ErrNoTransactions) {
			BadRequest(c, "No transactions to classify")
			return
		}
		Internal(c, fmt.Sprintf("Batch classification failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

// Health reports whether the model tier is loaded and how many rules are active.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		ModelLoaded: h.Engine.ModelAvailable(),
		Rules:       h.Engine.Rules().Len(),
	})
}

// Rules lists the active rule table in evaluation order.
func (h *Handler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": h.Engine.Rules().Definitions()})
}

// Stats reports decision counts per method since startup.
func (h *Handler) Stats(c *gin.Context) {
	s := h.Engine.Stats()
	body := gin.H{
		"rules":    s.Rules,
		"ml":       s.ML,
		"fallback": s.Fallback,
		"total":    s.Total(),
	}
	if s.Cache != nil {
		body["cache"] = gin.H{
			"entries":  s.Cache.Entries,
			"hits":     s.Cache.Hits,
			"misses":   s.Cache.Misses,
			"hit_rate": s.Cache.HitRate(),
		}
	}
	c.JSON(http.StatusOK, body)
}
