package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	Service *service.ExamService
}

func NewExamHandler(s *service.ExamService) *ExamHandler {
	return &ExamHandler{Service: s}
}

// CreateExam starts a new exam session for the calling user.
func (h *ExamHandler) CreateExam(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	created, err := h.Service.CreateExam(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetQuestion serves one question of a session with solutions stripped.
func (h *ExamHandler) GetQuestion(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	index, ok := indexParam(c)
	if !ok {
		return
	}
	question, err := h.Service.GetQuestion(c.Request.Context(), userID, c.Param("examId"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// SubmitAnswer evaluates and records a submission for one question index.
func (h *ExamHandler) SubmitAnswer(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req struct {
		Selected []string `json:"selected" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	if err := h.Service.SubmitAnswer(c.Request.Context(), userID, c.Param("examId"), index, req.Selected); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetResult aggregates the session into a scored result.
func (h *ExamHandler) GetResult(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	result, err := h.Service.GetResult(c.Request.Context(), userID, c.Param("examId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClearExams deletes every session owned by the calling user.
func (h *ExamHandler) ClearExams(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if err := h.Service.ClearAll(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question index must be an integer"})
		return 0, false
	}
	return index, true
}

// respondError maps engine failure categories to HTTP statuses. Ownership
// failures are reported as 401, everything the engine could not find
// (sessions, questions, indexes, an empty bank) as 404.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyBank),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrIndexOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
