package notes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPatchNoteRequest_Presence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Fields
	}{
		{name: "both fields", body: `{"title":"t","content":"c"}`, want: Fields{FieldTitle: "t", FieldContent: "c"}},
		{name: "title only", body: `{"title":"t"}`, want: Fields{FieldTitle: "t"}},
		{name: "content only", body: `{"content":"c"}`, want: Fields{FieldContent: "c"}},
		{name: "empty string kept", body: `{"title":""}`, want: Fields{FieldTitle: ""}},
		{name: "null treated as absent", body: `{"title":null,"content":"c"}`, want: Fields{FieldContent: "c"}},
		{name: "empty object", body: `{}`, want: Fields{}},
		{
			name: "non-patchable keys ignored",
			body: `{"color":"#FF0000","createdAt":"2020-01-01T00:00:00Z","_id":"683cdb8aa96ad71e8e075bd1"}`,
			want: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PatchNoteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Fields())
		})
	}
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var req PatchNoteRequest
	assert.Error(t, json.Unmarshal([]byte(`{"title":42}`), &req))
}

func TestOptionalString_Marshal(t *testing.T) {
	b, err := json.Marshal(UpdateColorRequest{Color: Some("#FF0000")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#FF0000"}`, string(b))

	b, err = json.Marshal(UpdateColorRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":null}`, string(b))
}

func TestUpdateColorRequest_Presence(t *testing.T) {
	var req UpdateColorRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.False(t, req.Color.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"color":""}`), &req))
	assert.True(t, req.Color.Set)
	assert.Equal(t, "", req.Color.Value)
}

func TestParseID(t *testing.T) {
	id := bson.NewObjectID()

	parsed, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, bad := range []string{"", "invalid", "683cdb8aa96ad71e8e075bd", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidNoteID, "input %q", bad)
	}
}

func TestNoteJSONShape(t *testing.T) {
	id, err := ParseID("683cdb8aa96ad71e8e075bd1")
	require.NoError(t, err)

	b, err := json.Marshal(&Note{ID: id, Title: "t", Content: "c"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "683cdb8aa96ad71e8e075bd1", m["_id"])
	assert.Equal(t, "t", m["title"])
	assert.Equal(t, "c", m["content"])
	assert.Contains(t, m, "createdAt")
	assert.NotContains(t, m, "color", "color is absent until set")

	red := "#FF0000"
	b, err = json.Marshal(&Note{ID: id, Color: &red})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"color":"#FF0000"`)
}
