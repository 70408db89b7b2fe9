package handler

import (
	"fmt"
	"io"

	"autoquiz/internal/domain"
	"autoquiz/internal/dto"
	"autoquiz/internal/middleware"
	"autoquiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document upload and management requests
type DocumentHandler struct {
	service service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(service service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// UploadDocument godoc
// @Summary Upload a PDF document
// @Description Extracts the text of a PDF and stores it together with the original file
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("No file part in the request")
	}

	file, err := header.Open()
	if err != nil {
		return domain.NewDocumentProcessingError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewDocumentProcessingError(fmt.Errorf("reading upload: %w", err))
	}

	resp, err := h.service.Upload(c.UserContext(), header.Filename, data)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListDocuments godoc
// @Summary List uploaded documents
// @Tags documents
// @Produce json
// @Success 200 {object} dto.DocumentListResponse
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	resp, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDocument godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	resp, err := h.service.Get(c.UserContext(), documentID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteDocument godoc
// @Summary Delete a document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id := documentID(c)
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Document with ID %s deleted successfully", id),
	})
}

// documentID prefers the id checked by the validation middleware.
func documentID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.ValidatedDocumentIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}
