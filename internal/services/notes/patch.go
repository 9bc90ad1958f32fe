package notes

import (
	"bytes"
	"encoding/json"
)

// OptionalString tells an omitted JSON key apart from one set to "".
// Set is true only when the key was present with a string value;
// an explicit null counts as absent.
type OptionalString struct {
	Value string
	Set   bool
}

// Some returns a present OptionalString.
func Some(v string) OptionalString {
	return OptionalString{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = OptionalString{}
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Fields is a presence map of stored field name to new value.
// A key that is missing is never written.
type Fields map[string]string

// Has reports whether name is present.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// PatchNoteRequest represents a partial note update.
// Only title and content are patchable; any other key in the body is ignored.
type PatchNoteRequest struct {
	Title   OptionalString `json:"title" swaggertype:"string" example:"Updated title"`
	Content OptionalString `json:"content" swaggertype:"string" example:"Updated content"`
}

// Fields returns the presence map for the keys the caller supplied.
func (r PatchNoteRequest) Fields() Fields {
	f := Fields{}
	if r.Title.Set {
		f[FieldTitle] = r.Title.Value
	}
	if r.Content.Set {
		f[FieldContent] = r.Content.Value
	}
	return f
}

// UpdateColorRequest represents a recolor request.
// The value is stored verbatim; no hex format is enforced.
type UpdateColorRequest struct {
	Color OptionalString `json:"color" swaggertype:"string" example:"#FF0000"`
}

// CreateNoteRequest represents a note creation request.
// Empty strings are accepted as-is.
type CreateNoteRequest struct {
	Title   string `json:"title" example:"Groceries"`
	Content string `json:"content" example:"Milk, eggs, coffee"`
}
