package repository

import (
	"os"
	"path/filepath"
	"testing"

	"quizhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateLoadMissingFile(t *testing.T) {
	repo := NewStateRepository(filepath.Join(t.TempDir(), "quiz-state.json"))

	state, ok := repo.Load()
	assert.False(t, ok)
	assert.Nil(t, state)
	assert.False(t, repo.Exists())
}

func TestStateLoadCorruptFile(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"garbage", "{{{"},
		{"json array", `[1,2,3]`},
		{"json scalar", `42`},
		{"json null", `null`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "quiz-state.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			repo := NewStateRepository(path)
			state, ok := repo.Load()
			assert.False(t, ok, "corrupt state must read as empty, not fail")
			assert.Nil(t, state)
		})
	}
}

func TestStateSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz-state.json")
	repo := NewStateRepository(path)

	saved := model.ProgressState{
		"attemptedQuestions": map[string]interface{}{
			"math/algebra/linear.json:0": map[string]interface{}{"correct": true},
		},
		"markedForReview":      []interface{}{"math/algebra/linear.json:2"},
		"currentQuestionIndex": float64(3),
	}
	require.NoError(t, repo.Save(saved))
	assert.True(t, repo.Exists())

	loaded, ok := repo.Load()
	require.True(t, ok)
	assert.Equal(t, saved, loaded)
}

func TestStateSaveReplacesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz-state.json")
	repo := NewStateRepository(path)

	require.NoError(t, repo.Save(model.ProgressState{"old": "value", "keep": "no"}))
	require.NoError(t, repo.Save(model.ProgressState{"new": "value"}))

	loaded, ok := repo.Load()
	require.True(t, ok)
	assert.Equal(t, model.ProgressState{"new": "value"}, loaded)
}

func TestStateSaveFailsLoudly(t *testing.T) {
	repo := NewStateRepository(filepath.Join(t.TempDir(), "missing-dir", "quiz-state.json"))

	err := repo.Save(model.ProgressState{"a": "b"})
	assert.Error(t, err, "a dropped save must surface, not vanish")
}

func TestStateRawReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz-state.json")
	content := []byte(`{"custom": "document"}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	repo := NewStateRepository(path)
	raw, err := repo.Raw()
	require.NoError(t, err)
	assert.Equal(t, content, raw, "read-back is verbatim, no re-marshalling")
}
