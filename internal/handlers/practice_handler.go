package handlers

import (
	"net/http"
	"strconv"

	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PracticeHandler struct {
	Service *service.PracticeService
}

func NewPracticeHandler(s *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{Service: s}
}

func (h *PracticeHandler) GetCount(c *gin.Context) {
	count, err := h.Service.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetQuestion serves the index-th question of the bank, unredacted:
// practice mode shows solutions and explanations.
func (h *PracticeHandler) GetQuestion(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question index must be an integer"})
		return
	}
	question, err := h.Service.FindByIndex(c.Request.Context(), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}
