package notes

import "errors"

// ErrCreateNote is returned when note creation fails.
var ErrCreateNote = errors.New("failed to create note")

// ErrListNotes is returned when notes listing fails.
var ErrListNotes = errors.New("failed to list notes")

// ErrDeleteNote is returned when note deletion fails.
var ErrDeleteNote = errors.New("failed to delete note")

// ErrPatchNote is returned when a note patch fails.
var ErrPatchNote = errors.New("failed to patch note")

// ErrDeleteAllNotes is returned when the bulk delete fails.
var ErrDeleteAllNotes = errors.New("failed to delete notes")

// ErrUpdateColor is returned when a recolor fails.
var ErrUpdateColor = errors.New("failed to update note color")

// ErrColorRequired is returned when a recolor request has no color key.
var ErrColorRequired = errors.New("color is required")

// ErrInvalidNoteID is returned when an identifier cannot be parsed.
var ErrInvalidNoteID = errors.New("invalid note ID")

// ErrImmutableField is returned by repositories asked to write a field
// outside of title, content and color.
var ErrImmutableField = errors.New("field cannot be updated")
