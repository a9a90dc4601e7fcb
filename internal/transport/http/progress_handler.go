package handlers

import (
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/catalog"
	"learnplatform/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progress *usecase.ProgressService
	catalog  *catalog.Catalog
}

func NewProgressHandler(progress *usecase.ProgressService, cat *catalog.Catalog) *ProgressHandler {
	return &ProgressHandler{progress: progress, catalog: cat}
}

// GET /api/v1/progress
func (h *ProgressHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}
	c.JSON(http.StatusOK, h.progress.Summary(c, userID))
}

type submitQuizReq struct {
	AnswerIndex *int `json:"answer_index" binding:"required"`
}

// POST /api/v1/lessons/:id/quiz
// Урок отмечается просмотренным при любом исходе квиза, сдан ли квиз —
// хранится отдельным флагом.
func (h *ProgressHandler) SubmitQuiz(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}

	lesson, ok := h.catalog.LessonByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	quiz, ok := h.catalog.QuizByLesson(lesson.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	var req submitQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.AnswerIndex < 0 || *req.AnswerIndex >= len(quiz.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer_index out of range"})
		return
	}

	correct := *req.AnswerIndex == quiz.CorrectAnswerIndex
	percent := h.progress.RecordCompletion(c, userID, lesson.CourseID, lesson.ID, correct)

	c.JSON(http.StatusOK, gin.H{
		"correct":         correct,
		"course_id":       lesson.CourseID,
		"course_progress": percent,
	})
}
