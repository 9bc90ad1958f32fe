package mongo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"quirknotes/internal/logger"
	"quirknotes/internal/services/notes"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NotesCollection is the collection every note lives in.
const NotesCollection = "notes"

// writableFields are the only stored fields a targeted update may touch.
var writableFields = map[string]struct{}{
	notes.FieldTitle:   {},
	notes.FieldContent: {},
	notes.FieldColor:   {},
}

// NotesRepo implements the notes.Repository interface for MongoDB
type NotesRepo struct {
	collection *mongo.Collection
}

// storedNow returns the current UTC time at the millisecond precision a BSON date keeps,
// so the value handed back on insert matches what a later read decodes.
func storedNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func repoCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return WithRepoTimeout(parent, OpTimeout)
}

// NewNotesRepo creates a new notes repository
func NewNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		collection: db.Collection(NotesCollection),
	}
}

// Insert stores a new note and returns the driver-generated ID
func (r *NotesRepo) Insert(ctx context.Context, note *notes.Note) (bson.ObjectID, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	note.ID = bson.ObjectID{}
	note.CreatedAt = storedNow()

	res, err := r.collection.InsertOne(ctx, note)
	if err != nil {
		return bson.ObjectID{}, err
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	note.ID = id
	return id, nil
}

// FindAll retrieves every note without sorting, so the server's natural order is kept
func (r *NotesRepo) FindAll(ctx context.Context) ([]*notes.Note, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		if cerr := cursor.Close(ctxToClose); cerr != nil {
			logger.L().Error("failed to close cursor", "error", cerr)
		}
	}(ctx)

	notesList := []*notes.Note{}
	if err := cursor.All(ctx, &notesList); err != nil {
		return nil, err
	}

	return notesList, nil
}

// DeleteByID deletes at most one note and returns the number removed
func (r *NotesRepo) DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{notes.FieldID: id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// UpdateFieldsByID $sets exactly the keys present in fields and returns the matched count.
// With no fields nothing is written; the match is still reported.
func (r *NotesRepo) UpdateFieldsByID(ctx context.Context, id bson.ObjectID, fields notes.Fields) (int64, error) {
	set, err := buildSet(fields)
	if err != nil {
		return 0, err
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{notes.FieldID: id}

	// MongoDB rejects an empty $set
	if len(set) == 0 {
		return r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// DeleteAll removes every note and returns the server-reported count
func (r *NotesRepo) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// buildSet turns a presence map into a $set document with a stable key order.
func buildSet(fields notes.Fields) (bson.D, error) {
	set := bson.D{}
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if _, ok := writableFields[k]; !ok {
			return nil, fmt.Errorf("%w: %s", notes.ErrImmutableField, k)
		}
		set = append(set, bson.E{Key: k, Value: fields[k]})
	}
	return set, nil
}
