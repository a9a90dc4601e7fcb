package handlers

import (
	"net/http"

	"learnplatform/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GET /api/v1/courses?search=...&category=...
func (h *CatalogHandler) List(c *gin.Context) {
	courses := h.catalog.Filter(c.Query("search"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

// GET /api/v1/courses/:id — курс вместе с уроками по порядку.
func (h *CatalogHandler) GetOne(c *gin.Context) {
	course, ok := h.catalog.CourseByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"course":  course,
		"lessons": h.catalog.LessonsByCourse(course.ID),
	})
}

// GET /api/v1/lessons/:id/quiz — без правильного ответа, он уходит
// только в проверку на сервере.
func (h *CatalogHandler) GetQuiz(c *gin.Context) {
	quiz, ok := h.catalog.QuizByLesson(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
