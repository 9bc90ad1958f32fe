package handlerutil

import (
	"errors"

	"quirknotes/cmd/server/handlers/httperr"
	"quirknotes/internal/logger"
	"quirknotes/internal/services/notes"

	"github.com/gofiber/fiber/v2"
)

// ParseBody parses the JSON body into req.
// An empty body leaves req at its zero value, which for patch requests means "no fields".
func ParseBody(c *fiber.Ctx, req any, handlerName string) error {
	if len(c.Body()) == 0 {
		return nil
	}

	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "path", c.Path(), "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	return nil
}

// ExtractNoteID checks that the :id route parameter is an ObjectId and returns it as sent
func ExtractNoteID(c *fiber.Ctx, handlerName string) (string, error) {
	raw := c.Params("id")

	if _, err := notes.ParseID(raw); err != nil {
		logger.L().Warn("invalid note ID parameter", "handler", handlerName, "noteIDStr", raw, "path", c.Path())
		return "", httperr.Fail(httperr.ErrInvalidNoteID)
	}

	return raw, nil
}

// HandleServiceError maps a service error to its HTTP response
func HandleServiceError(err error, handlerName string, noteID string) error {
	logFields := []any{"handler", handlerName, "error", err}
	if noteID != "" {
		logFields = append(logFields, "noteID", noteID)
	}

	switch {
	case errors.Is(err, notes.ErrInvalidNoteID):
		logger.L().Info("rejected request", logFields...)
		return httperr.Fail(httperr.ErrInvalidNoteID)
	case errors.Is(err, notes.ErrColorRequired):
		logger.L().Info("rejected request", logFields...)
		return httperr.Fail(httperr.E{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	logger.L().Error("service operation failed", logFields...)
	return httperr.Fail(httperr.InternalError(err.Error()))
}
