package notes

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for notes repository operations.
// The store owns identifier generation and is the only source of truth.
type Repository interface {
	// Insert stores n with CreatedAt set to the insertion time and returns the generated ID.
	Insert(ctx context.Context, n *Note) (bson.ObjectID, error)
	// FindAll returns every note in the store's natural order.
	FindAll(ctx context.Context) ([]*Note, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error)
	// UpdateFieldsByID writes exactly the keys present in fields and returns the matched count.
	UpdateFieldsByID(ctx context.Context, id bson.ObjectID, fields Fields) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Bus defines the interface for event broadcasting
type Bus interface {
	Broadcast(ctx context.Context, ev NoteEvent)
}

// ParseID converts the wire form of a note identifier into an ObjectID.
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidNoteID
	}
	return id, nil
}
