package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// E is the JSON error body, {"error": "..."}, paired with its status code.
type E struct {
	Status  int    `json:"-" example:"400"`
	Message string `json:"error" example:"Bad Request"`
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// JSON writes the error with its status code
func (e E) JSON(c *fiber.Ctx) error {
	return c.Status(e.Status).JSON(e)
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// InternalError returns an internal server error with the given message
func InternalError(message string) E {
	return E{Status: fiber.StatusInternalServerError, Message: message}
}

// Pre-defined HTTP errors
var (
	ErrBadRequest      = E{Status: fiber.StatusBadRequest, Message: "Bad Request"}
	ErrInvalidNoteID   = E{Status: fiber.StatusBadRequest, Message: "Invalid note ID"}
	ErrNotFound        = E{Status: fiber.StatusNotFound, Message: "Not Found"}
	ErrTooManyRequests = E{Status: fiber.StatusTooManyRequests, Message: "Too Many Requests"}
	ErrInternal        = InternalError("Internal Server Error")
)

// Handler is the global error handler for Fiber
func Handler(c *fiber.Ctx, err error) error {
	var e E
	if errors.As(err, &e) {
		return e.JSON(c)
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(E{
			Status:  fiberError.Code,
			Message: fiberError.Message,
		})
	}

	return ErrInternal.JSON(c)
}
