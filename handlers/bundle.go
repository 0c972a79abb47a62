// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Quote endpoints
	CalculateQuoteHandler  gin.HandlerFunc
	QuoteNotAllowedHandler gin.HandlerFunc
	GetSessionHandler      gin.HandlerFunc
	ResetSessionHandler    gin.HandlerFunc

	// Pricing endpoints
	GetSeasonsHandler gin.HandlerFunc
}

// NewHandlerBundle wires a QuoteHandler into a bundle.
func NewHandlerBundle(qh *QuoteHandler) *HandlerBundle {
	return &HandlerBundle{
		CalculateQuoteHandler:  qh.CalculateQuoteHandler,
		QuoteNotAllowedHandler: qh.MethodNotAllowedHandler,
		GetSessionHandler:      qh.GetSessionHandler,
		ResetSessionHandler:    qh.ResetSessionHandler,
		GetSeasonsHandler:      qh.GetSeasonsHandler,
	}
}
