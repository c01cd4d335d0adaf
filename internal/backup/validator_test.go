package backup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumpaworks/crashtrack/internal/catalog"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

// validDocJSON renders a well-formed backup document for mutation by
// the rejection cases.
func validDocJSON(t *testing.T) map[string]any {
	t.Helper()
	doc := testCodec().Encode(catalog.NewSnapshot(), types.ThemeDark, types.BackupManual)
	data, err := testCodec().Marshal(doc)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	return generic
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	assert.NoError(t, Validate(marshal(t, validDocJSON(t))))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{
			name:   "missing metadata",
			mutate: func(doc map[string]any) { delete(doc, "metadata") },
		},
		{
			name:   "missing progress",
			mutate: func(doc map[string]any) { delete(doc, "progress") },
		},
		{
			name:   "missing theme",
			mutate: func(doc map[string]any) { delete(doc, "theme") },
		},
		{
			name: "empty metadata version",
			mutate: func(doc map[string]any) {
				doc["metadata"].(map[string]any)["version"] = ""
			},
		},
		{
			name: "missing metadata timestamp",
			mutate: func(doc map[string]any) {
				delete(doc["metadata"].(map[string]any), "timestamp")
			},
		},
		{
			name: "truncated level list",
			mutate: func(doc map[string]any) {
				doc["progress"].(map[string]any)["levels"] = []any{}
			},
		},
		{
			name: "first level missing id",
			mutate: func(doc map[string]any) {
				levels := doc["progress"].(map[string]any)["levels"].([]any)
				delete(levels[0].(map[string]any), "id")
			},
		},
		{
			name: "first level missing progress",
			mutate: func(doc map[string]any) {
				levels := doc["progress"].(map[string]any)["levels"].([]any)
				delete(levels[0].(map[string]any), "progress")
			},
		},
		{
			name:   "unrecognized theme",
			mutate: func(doc map[string]any) { doc["theme"] = "sepia" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocJSON(t)
			tt.mutate(doc)
			assert.ErrorIs(t, Validate(marshal(t, doc)), types.ErrInvalidBackup)
		})
	}
}

func TestValidateRejectsNonJSON(t *testing.T) {
	assert.ErrorIs(t, Validate([]byte("definitely not json")), types.ErrInvalidBackup)
}
