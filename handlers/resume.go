package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/auth"
	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/storage"
	"github.com/careercompass/backend/utils"
)

// multipartOverhead is the room left for boundaries, part headers and form
// fields on top of the file itself
const multipartOverhead = 64 << 10

// ResumeHandler extracts text from uploaded resume files
type ResumeHandler struct {
	extractor      *utils.DocumentExtractor
	archiver       storage.Archiver
	maxUploadBytes int64
}

// NewResumeHandler creates a new resume handler. archiver may be nil.
func NewResumeHandler(extractor *utils.DocumentExtractor, archiver storage.Archiver, maxUploadBytes int64) *ResumeHandler {
	return &ResumeHandler{
		extractor:      extractor,
		archiver:       archiver,
		maxUploadBytes: maxUploadBytes,
	}
}

// Extract returns the plain text of an uploaded resume
// @Summary Extract resume text
// @Description Extracts plain text from a PDF, DOCX or TXT resume. Set archive=true to keep a copy in Cloud Storage.
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file (PDF, DOCX, TXT)"
// @Param archive formData bool false "Archive the uploaded file"
// @Success 200 {object} models.ExtractResumeResponse "Extracted text"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 422 {object} models.ErrorResponse "No readable text"
// @Router /resume/extract [post]
func (h *ResumeHandler) Extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "File too large", fmt.Sprintf("maximum size is %d bytes", h.maxUploadBytes))
			return
		}
		respondError(c, http.StatusBadRequest, "Resume file is required", err.Error())
		return
	}
	defer file.Close()

	if !utils.IsSupportedFormat(header.Filename) {
		respondError(c, http.StatusBadRequest, "Unsupported file type",
			fmt.Sprintf("%s is not supported; upload a PDF, DOCX or TXT file", filepath.Ext(header.Filename)))
		return
	}

	if header.Size > h.maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "File too large", fmt.Sprintf("maximum size is %d bytes", h.maxUploadBytes))
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read resume file", err.Error())
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "File too large", fmt.Sprintf("maximum size is %d bytes", h.maxUploadBytes))
		return
	}

	text, err := h.extractor.ExtractText(header.Filename, content)
	if err != nil {
		log.Printf("[ResumeHandler] Extraction failed for %s: %v", header.Filename, err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, utils.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		respondError(c, status, "Could not extract text from resume", err.Error())
		return
	}

	resp := models.ExtractResumeResponse{
		Success:    true,
		Text:       text,
		FileName:   header.Filename,
		Characters: len([]rune(text)),
	}

	if h.archiver != nil && c.PostForm("archive") == "true" {
		url, err := h.archiver.UploadResume(c.Request.Context(), auth.UserID(c), header.Filename, content)
		if err != nil {
			log.Printf("[ResumeHandler] Failed to archive %s: %v", header.Filename, err)
		} else {
			resp.Archived = true
			resp.ArchiveURL = url
		}
	}

	log.Printf("[ResumeHandler] Extracted %d characters from %s", resp.Characters, header.Filename)
	c.JSON(http.StatusOK, resp)
}
