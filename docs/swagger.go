// Package docs QuirkNotes API
//
// @title  QuirkNotes API
// @version 0.1.0
// @description Note CRUD with a live change stream.
// @host      localhost:4000
// @BasePath /
// @schemes http https
package docs

import (
	_ "quirknotes/cmd/server/handlers/httperr"
	_ "quirknotes/internal/services/notes"
)
