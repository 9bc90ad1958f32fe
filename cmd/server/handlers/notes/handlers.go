package notes

import (
	"context"

	"quirknotes/cmd/server/handlers/handlerutil"
	"quirknotes/internal/services/notes"

	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for notes service
type Service interface {
	Create(ctx context.Context, req notes.CreateNoteRequest) (*notes.MessageResponse, error)
	List(ctx context.Context) (*notes.ListNotesResponse, error)
	Delete(ctx context.Context, noteID string) (*notes.MessageResponse, error)
	Patch(ctx context.Context, noteID string, req notes.PatchNoteRequest) (*notes.MessageResponse, error)
	DeleteAll(ctx context.Context) (*notes.MessageResponse, error)
	UpdateColor(ctx context.Context, noteID string, req notes.UpdateColorRequest) (*notes.ColorResponse, error)
}

// Handlers contains the notes HTTP handlers
type Handlers struct {
	service Service
}

// NewHandlers creates new notes handlers
func NewHandlers(service Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Create handles note creation
// @Summary Create a new note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body notes.CreateNoteRequest true "Create note request"
// @Success 200 {object} notes.MessageResponse
// @Failure 400 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /postNote [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req notes.CreateNoteRequest
	if err := handlerutil.ParseBody(c, &req, "Create"); err != nil {
		return err
	}

	resp, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Create", "")
	}

	return c.JSON(resp)
}

// List handles notes listing
// @Summary List every note
// @Description Returns all notes in storage order. No pagination, filtering or sorting.
// @Tags notes
// @Produce json
// @Success 200 {object} notes.ListNotesResponse
// @Failure 500 {object} httperr.E
// @Router /getAllNotes [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	resp, err := h.service.List(c.UserContext())
	if err != nil {
		return handlerutil.HandleServiceError(err, "List", "")
	}

	return c.JSON(resp)
}

// Delete handles note deletion
// @Summary Delete a note
// @Description Succeeds whether or not a note with the ID exists.
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} notes.MessageResponse
// @Failure 400 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /deleteNote/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	noteID, err := handlerutil.ExtractNoteID(c, "Delete")
	if err != nil {
		return err
	}

	resp, err := h.service.Delete(c.UserContext(), noteID)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Delete", noteID)
	}

	return c.JSON(resp)
}

// Patch handles partial note updates
// @Summary Patch a note
// @Description Overwrites only the title and/or content keys present in the body.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body notes.PatchNoteRequest false "Fields to overwrite"
// @Success 200 {object} notes.MessageResponse
// @Failure 400 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /patchNote/{id} [patch]
func (h *Handlers) Patch(c *fiber.Ctx) error {
	noteID, err := handlerutil.ExtractNoteID(c, "Patch")
	if err != nil {
		return err
	}

	var req notes.PatchNoteRequest
	if err := handlerutil.ParseBody(c, &req, "Patch"); err != nil {
		return err
	}

	resp, err := h.service.Patch(c.UserContext(), noteID, req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Patch", noteID)
	}

	return c.JSON(resp)
}

// DeleteAll handles bulk deletion
// @Summary Delete every note
// @Tags notes
// @Produce json
// @Success 200 {object} notes.MessageResponse
// @Failure 500 {object} httperr.E
// @Router /deleteAllNotes [delete]
func (h *Handlers) DeleteAll(c *fiber.Ctx) error {
	resp, err := h.service.DeleteAll(c.UserContext())
	if err != nil {
		return handlerutil.HandleServiceError(err, "DeleteAll", "")
	}

	return c.JSON(resp)
}

// UpdateColor handles recoloring
// @Summary Update a note's color
// @Description Stores the color string verbatim. Only the color field is written.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body notes.UpdateColorRequest true "New color"
// @Success 200 {object} notes.ColorResponse
// @Failure 400 {object} httperr.E
// @Failure 500 {object} httperr.E
// @Router /updateNoteColor/{id} [patch]
func (h *Handlers) UpdateColor(c *fiber.Ctx) error {
	noteID, err := handlerutil.ExtractNoteID(c, "UpdateColor")
	if err != nil {
		return err
	}

	var req notes.UpdateColorRequest
	if err := handlerutil.ParseBody(c, &req, "UpdateColor"); err != nil {
		return err
	}

	resp, err := h.service.UpdateColor(c.UserContext(), noteID, req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "UpdateColor", noteID)
	}

	return c.JSON(resp)
}
