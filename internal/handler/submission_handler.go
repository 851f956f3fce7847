package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/topic-advisor-api/internal/handler/dto"
	"github.com/yourusername/topic-advisor-api/internal/handler/helper"
	"github.com/yourusername/topic-advisor-api/internal/middleware"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/internal/service"
)

// SubmissionHandler serves quiz submission creation, history, point
// lookup, the session claim and the admin export.
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates the submission handler.
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// List handles GET /api/submissions.
func (h *SubmissionHandler) List(c *gin.Context) {
	submissions, err := h.submissionService.ListByUser(middleware.UserID(c))
	if err != nil {
		log.Printf("[SubmissionHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}
	c.JSON(http.StatusOK, helper.ToSubmissionSummaryDTOs(submissions))
}

// Create handles POST /api/submissions. Authenticated callers own the
// submission directly; anonymous callers must present a session id header.
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := middleware.UserID(c)
	sessionToken := middleware.SessionToken(c)

	submission, err := h.submissionService.Create(userID, sessionToken, req.Answers, req.DurationMs)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing session token"})
			return
		}
		log.Printf("[SubmissionHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionCreatedResponse{
		ID:         submission.ID,
		ThesisType: submission.ThesisType,
		Scores:     submission.Scores,
		TopAreas:   submission.TopAreas,
		Answered:   len(req.Answers),
		Total:      h.submissionService.QuestionCount(),
		DurationMs: submission.DurationMs,
	})
}

// Claim handles POST /api/submissions/claim: reassigns the caller's
// anonymous submissions. Safe to repeat; the second claim reports zero.
func (h *SubmissionHandler) Claim(c *gin.Context) {
	sessionToken := middleware.SessionToken(c)
	if sessionToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session token"})
		return
	}

	claimed, err := h.submissionService.Claim(middleware.UserID(c), sessionToken)
	if err != nil {
		log.Printf("[SubmissionHandler] claim failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim submissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{OK: true, Claimed: claimed})
}

// Get handles GET /api/submissions/:id. A submission owned by a different
// authenticated user reads as absent.
func (h *SubmissionHandler) Get(c *gin.Context) {
	submission, err := h.submissionService.GetVisible(c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("[SubmissionHandler] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	c.JSON(http.StatusOK, helper.ToSubmissionDetailDTO(submission, h.submissionService.QuestionCount()))
}

// Export handles GET /api/admin/submissions/export: recent submissions as
// a spreadsheet, streamed row by row.
func (h *SubmissionHandler) Export(c *gin.Context) {
	submissions, err := h.submissionService.ListRecent()
	if err != nil {
		log.Printf("[SubmissionHandler] export query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="submissions.xlsx"`)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Submissions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[SubmissionHandler] failed to create stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create export file"})
		return
	}

	headers := []interface{}{"ID", "Owner", "Thesis Type", "Top Areas", "Answered", "Duration (ms)", "Created At"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[SubmissionHandler] failed to write export headers: %v", err)
	}

	for i, s := range submissions {
		owner := "anonymous"
		if s.UserID != nil {
			owner = *s.UserID
		}
		row := []interface{}{
			s.ID,
			owner,
			s.ThesisType,
			strings.Join(s.TopAreas, ", "),
			len(s.Answers),
			s.DurationMs,
			s.CreatedAt.Format(time.RFC3339),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[SubmissionHandler] failed to write export row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[SubmissionHandler] failed to flush export: %v", err)
		return
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[SubmissionHandler] failed to send export: %v", err)
	}
}
