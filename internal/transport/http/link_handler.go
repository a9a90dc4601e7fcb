package handlers

import (
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"
	"learnplatform/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LinkHandler struct {
	links *usecase.LinkService
}

func NewLinkHandler(links *usecase.LinkService) *LinkHandler {
	return &LinkHandler{links: links}
}

type addStudentReq struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/v1/students
func (h *LinkHandler) AddStudent(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}

	var req addStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.links.Request(c, userID, req.Email)
	if err != nil {
		h.respondLinkError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// GET /api/v1/students
func (h *LinkHandler) ListStudents(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}

	students, err := h.links.ListForGuardian(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students, try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// DELETE /api/v1/students/:linkId
func (h *LinkHandler) RemoveStudent(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}
	linkID, err := uuid.Parse(c.Param("linkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link id"})
		return
	}

	if err := h.links.Remove(c, linkID, userID); err != nil {
		h.respondLinkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/requests — запросы на отслеживание текущего ученика.
func (h *LinkHandler) ListRequests(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}

	requests, err := h.links.ListForStudent(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests, try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type resolveReq struct {
	Decision string `json:"decision" binding:"required"`
}

// POST /api/v1/requests/:id
func (h *LinkHandler) ResolveRequest(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidLinkDecision(req.Decision) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision must be approved or rejected"})
		return
	}

	link, err := h.links.Resolve(c, linkID, userID, req.Decision)
	if err != nil {
		h.respondLinkError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// respondLinkError переводит доменные ошибки в отдельные сообщения:
// UI показывает для каждой свой текст.
func (h *LinkHandler) respondLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Student with this email not found"})
	case errors.Is(err, domain.ErrSelfLinkNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": "You cannot track yourself"})
	case errors.Is(err, domain.ErrDuplicateLink):
		c.JSON(http.StatusConflict, gin.H{"error": "Student already linked"})
	case errors.Is(err, domain.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tracking link not found"})
	case errors.Is(err, domain.ErrRequestResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "Request already resolved"})
	case errors.Is(err, domain.ErrNotYourRequest), errors.Is(err, domain.ErrNotYourLink):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, try again"})
	}
}
