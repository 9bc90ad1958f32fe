package notes

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Stored field names of a note document.
const (
	FieldID        = "_id"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldCreatedAt = "createdAt"
	FieldColor     = "color"
)

// Note represents a single note in the system
type Note struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id" example:"683cdb8aa96ad71e8e075bd1"`
	Title     string        `bson:"title" json:"title" example:"Groceries"`
	Content   string        `bson:"content" json:"content" example:"Milk, eggs, coffee"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt" example:"2025-06-01T23:00:26.005Z"`
	Color     *string       `bson:"color,omitempty" json:"color,omitempty" example:"#FF0000"`
}

// MatchResult is what a targeted write reports back from the store.
// Callers never see it on the wire; it only drives logging and events.
type MatchResult struct {
	Matched int64
}

// Found reports whether the write addressed an existing note.
func (r MatchResult) Found() bool {
	return r.Matched > 0
}

// Event types published on the note stream.
const (
	EventCreated   = "created"
	EventPatched   = "patched"
	EventRecolored = "recolored"
	EventDeleted   = "deleted"
	EventCleared   = "cleared"
)

// NoteEvent represents an event that occurred on a note
type NoteEvent struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Note    *Note  `json:"note,omitempty"`
	Fields  Fields `json:"fields,omitempty"`
	Deleted int64  `json:"deleted,omitempty"`
}
