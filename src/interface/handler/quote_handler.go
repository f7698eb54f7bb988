package handler

import (
	"net/http"

	"next-app/src/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for random quotes
type QuoteHandler struct {
	quoteUsecase usecase.QuoteUsecase
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteUsecase usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{
		quoteUsecase: quoteUsecase,
	}
}

// RandomQuote returns one random quote
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, QuoteResponseDTO{Quote: h.quoteUsecase.RandomQuote()})
}
