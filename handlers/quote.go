package handlers

import (
	"errors"
	"io"
	"net/http"

	"staycalc/models"
	"staycalc/services/quote"
	"staycalc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves the conversational quote endpoints.
type QuoteHandler struct {
	Service quote.QuoteService
}

func NewQuoteHandler(svc quote.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: svc}
}

// CalculateQuoteHandler runs one turn. Incomplete, priced and unsupported
// outcomes are all 200; only store failures are 500.
func (h *QuoteHandler) CalculateQuoteHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid quote request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Geçersiz istek gövdesi", err.Error())
		return
	}

	resp, err := h.Service.Process(c.Request.Context(), req)
	if err != nil {
		logger.Error("Quote processing failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Oturum kaydına erişilemedi", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MethodNotAllowedHandler answers every non-POST request on the quote path.
func (h *QuoteHandler) MethodNotAllowedHandler(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "POST kullanın"})
}

// GetSessionHandler returns what the session knows so far.
func (h *QuoteHandler) GetSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	view, err := h.Service.Session(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to load session", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Oturum kaydına erişilemedi", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ResetSessionHandler forgets the session so the next turn starts empty.
func (h *QuoteHandler) ResetSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	if err := h.Service.Reset(c.Request.Context(), sessionID); err != nil {
		logger.Error("Failed to reset session", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Oturum silinemedi", err.Error())
		return
	}
	logger.Info("Session reset", zap.String("sessionId", sessionID))
	c.JSON(http.StatusOK, gin.H{"status": "cleared", "sessionId": sessionID})
}

// GetSeasonsHandler lists the configured seasonal rates and guest mixes.
func (h *QuoteHandler) GetSeasonsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Seasons())
}
