package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quizhub_backend/internal/model"
	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
)

// StateRepository stores the single progress state document as one JSON file.
type StateRepository struct {
	filePath string
}

func NewStateRepository(filePath string) *StateRepository {
	return &StateRepository{filePath: filePath}
}

// FilePath returns the location of the persisted document.
func (r *StateRepository) FilePath() string {
	return r.filePath
}

// Load reads the persisted document. A missing, unreadable, or malformed
// file yields (nil, false): merges treat that as an empty prior state rather
// than failing the request.
func (r *StateRepository) Load() (model.ProgressState, bool) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("Failed to read state file, treating as empty",
				zap.String("path", r.filePath), zap.Error(err))
		}
		return nil, false
	}

	var state model.ProgressState
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Log.Warn("State file is not valid JSON, treating as empty",
			zap.String("path", r.filePath), zap.Error(err))
		return nil, false
	}
	if state == nil {
		return nil, false
	}
	return state, true
}

// Save replaces the persisted document. The content is written to a
// temporary file and renamed into place so readers never observe a torn
// document. Write failures surface to the caller; silently dropping a
// progress save would lose user data.
func (r *StateRepository) Save(state model.ProgressState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.filePath)
	tmp, err := os.CreateTemp(dir, ".quiz-state-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, r.filePath); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Raw returns the stored document bytes for verbatim read-back.
func (r *StateRepository) Raw() ([]byte, error) {
	return os.ReadFile(r.filePath)
}

// Exists reports whether a document has been persisted yet.
func (r *StateRepository) Exists() bool {
	_, err := os.Stat(r.filePath)
	return err == nil
}
