package notes

import (
	"context"
	"log/slog"

	"quirknotes/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles notes business logic
type Service struct {
	repo  Repository
	bus   Bus
	log   *slog.Logger
	clean func(string) string
}

// NewService creates a new notes service.
// With sanitizeHTML set, title and content are stripped of HTML before they are stored.
func NewService(repo Repository, bus Bus, log *slog.Logger, sanitizeHTML bool) *Service {
	clean := func(s string) string { return s }
	if sanitizeHTML {
		clean = sanitize.Clean
	}
	return &Service{
		repo:  repo,
		bus:   bus,
		log:   log,
		clean: clean,
	}
}

// Create creates a new note
func (s *Service) Create(ctx context.Context, req CreateNoteRequest) (*MessageResponse, error) {
	note := &Note{
		Title:   s.clean(req.Title),
		Content: s.clean(req.Content),
	}

	id, err := s.repo.Insert(ctx, note)
	if err != nil {
		s.log.Error(ErrCreateNote.Error(), "error", err)
		return nil, ErrCreateNote
	}
	note.ID = id

	s.log.Debug("note created", "note_id", id.Hex())
	s.bus.Broadcast(ctx, NoteEvent{
		Type: EventCreated,
		ID:   id.Hex(),
		Note: note,
	})

	return noteAddedResponse(), nil
}

// List returns every note in the store's natural order
func (s *Service) List(ctx context.Context) (*ListNotesResponse, error) {
	notes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error(ErrListNotes.Error(), "error", err)
		return nil, ErrListNotes
	}
	if notes == nil {
		notes = []*Note{}
	}
	return &ListNotesResponse{Response: notes}, nil
}

// Delete deletes a single note. A missing note is not an error.
// The confirmation echoes id exactly as the caller sent it.
func (s *Service) Delete(ctx context.Context, id string) (*MessageResponse, error) {
	noteID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	n, err := s.repo.DeleteByID(ctx, noteID)
	if err != nil {
		s.log.Error(ErrDeleteNote.Error(), "error", err, "note_id", id)
		return nil, ErrDeleteNote
	}

	res := MatchResult{Matched: n}
	if !res.Found() {
		s.log.Info("note not found for delete", "note_id", id)
	} else {
		s.bus.Broadcast(ctx, NoteEvent{Type: EventDeleted, ID: noteID.Hex()})
	}

	return noteDeletedResponse(id), nil
}

// Patch overwrites only the fields present in req. A body without
// title or content, or a missing note, still reports success.
func (s *Service) Patch(ctx context.Context, id string, req PatchNoteRequest) (*MessageResponse, error) {
	noteID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	for k, v := range fields {
		fields[k] = s.clean(v)
	}

	res, err := s.updateFields(ctx, noteID, fields)
	if err != nil {
		s.log.Error(ErrPatchNote.Error(), "error", err, "note_id", id)
		return nil, ErrPatchNote
	}

	switch {
	case !res.Found():
		s.log.Info("note not found for patch", "note_id", id)
	case len(fields) == 0:
		s.log.Debug("empty patch", "note_id", id)
	default:
		s.bus.Broadcast(ctx, NoteEvent{Type: EventPatched, ID: noteID.Hex(), Fields: fields})
	}

	return notePatchedResponse(id), nil
}

// DeleteAll removes every note and reports the store's own deletion count
func (s *Service) DeleteAll(ctx context.Context) (*MessageResponse, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.log.Error(ErrDeleteAllNotes.Error(), "error", err)
		return nil, ErrDeleteAllNotes
	}

	s.log.Info("notes deleted", "count", n)
	s.bus.Broadcast(ctx, NoteEvent{Type: EventCleared, Deleted: n})

	return notesClearedResponse(n), nil
}

// UpdateColor sets the color of a note and nothing else
func (s *Service) UpdateColor(ctx context.Context, id string, req UpdateColorRequest) (*ColorResponse, error) {
	noteID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if !req.Color.Set {
		return nil, ErrColorRequired
	}

	fields := Fields{FieldColor: req.Color.Value}
	res, err := s.updateFields(ctx, noteID, fields)
	if err != nil {
		s.log.Error(ErrUpdateColor.Error(), "error", err, "note_id", id)
		return nil, ErrUpdateColor
	}

	if !res.Found() {
		s.log.Info("note not found for color update", "note_id", id)
	} else {
		s.bus.Broadcast(ctx, NoteEvent{Type: EventRecolored, ID: noteID.Hex(), Fields: fields})
	}

	return colorUpdatedResponse(), nil
}

func (s *Service) updateFields(ctx context.Context, noteID bson.ObjectID, fields Fields) (MatchResult, error) {
	n, err := s.repo.UpdateFieldsByID(ctx, noteID, fields)
	if err != nil {
		return MatchResult{}, err
	}
	return MatchResult{Matched: n}, nil
}
