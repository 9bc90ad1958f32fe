package notes

import "fmt"

// Every wire message of the note API is formatted here, so the
// "response"/"message" key split stays in one place.

const (
	msgNoteAdded    = "Note added succesfully."
	msgColorUpdated = "Note color updated successfully."
)

// MessageResponse is the {"response": "..."} envelope.
type MessageResponse struct {
	Response string `json:"response" example:"Note added succesfully."`
}

// ListNotesResponse is the {"response": [...]} envelope.
type ListNotesResponse struct {
	Response []*Note `json:"response"`
}

// ColorResponse is the recolor envelope, which uses "message" instead of "response".
type ColorResponse struct {
	Message string `json:"message" example:"Note color updated successfully."`
}

func noteAddedResponse() *MessageResponse {
	return &MessageResponse{Response: msgNoteAdded}
}

func noteDeletedResponse(id string) *MessageResponse {
	return &MessageResponse{Response: fmt.Sprintf("Document with ID %s deleted.", id)}
}

func notePatchedResponse(id string) *MessageResponse {
	return &MessageResponse{Response: fmt.Sprintf("Document with ID %s patched.", id)}
}

func notesClearedResponse(n int64) *MessageResponse {
	return &MessageResponse{Response: fmt.Sprintf("%d note(s) deleted.", n)}
}

func colorUpdatedResponse() *ColorResponse {
	return &ColorResponse{Message: msgColorUpdated}
}
