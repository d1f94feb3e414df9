package service

import (
	"sync"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// StateService reconciles incoming progress snapshots with the persisted
// state document. It owns all reads and writes of that document.
type StateService struct {
	StateRepo *repository.StateRepository

	// mu serializes the load-merge-store cycle; without it two merges can
	// read the same prior state and overwrite each other's additions.
	mu sync.Mutex

	now func() time.Time
}

func NewStateService(stateRepo *repository.StateRepository) *StateService {
	return &StateService{
		StateRepo: stateRepo,
		now:       time.Now,
	}
}

// MergeAndPersist merges incoming into the persisted document and writes the
// result back, returning the merged document.
//
// Field rules:
//   - attemptedQuestions: per-key overlay, incoming wins per key, keys absent
//     from incoming are kept.
//   - markedForReview: set union, stored sorted and deduplicated.
//   - currentFilter, currentQuestionIndex: incoming wins whenever the field
//     is present, even with a falsy value; else existing; else the default.
//   - lastUpdated: incoming, else existing, else now.
//   - anything else: incoming passes through verbatim; fields only the
//     existing document has are preserved.
//
// A missing or corrupt prior document is an empty prior state, never an
// error. ErrInvalidStatePayload when incoming is not a mapping.
// ErrStateWrite when the final write fails; this is the one loud failure in
// the core, a silently dropped save would lose the user's progress.
func (s *StateService) MergeAndPersist(incoming model.ProgressState) (model.ProgressState, error) {
	if incoming == nil {
		monitoring.StateMerges.WithLabelValues("invalid").Inc()
		return nil, util.ErrInvalidStatePayload
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.StateRepo.Load()
	if existing == nil {
		existing = model.ProgressState{}
	}

	merged := model.ProgressState{}

	attempts := existing.AttemptMap(model.FieldAttemptedQuestions)
	for key, val := range incoming.AttemptMap(model.FieldAttemptedQuestions) {
		attempts[key] = val
	}
	merged[model.FieldAttemptedQuestions] = attempts

	review := existing.ReviewSet(model.FieldMarkedForReview)
	for id := range incoming.ReviewSet(model.FieldMarkedForReview) {
		review[id] = struct{}{}
	}
	merged[model.FieldMarkedForReview] = model.SortedReviewList(review)

	merged[model.FieldCurrentFilter] = pickPresent(incoming, existing, model.FieldCurrentFilter, map[string]interface{}{})
	merged[model.FieldCurrentQuestionIndex] = pickPresent(incoming, existing, model.FieldCurrentQuestionIndex, 0)
	merged[model.FieldLastUpdated] = pickPresent(incoming, existing, model.FieldLastUpdated,
		s.now().UTC().Format(time.RFC3339))

	for key, val := range incoming {
		if !model.IsRecognizedStateField(key) {
			merged[key] = val
		}
	}
	for key, val := range existing {
		if _, taken := merged[key]; !taken {
			merged[key] = val
		}
	}

	if err := s.StateRepo.Save(merged); err != nil {
		logger.Log.Error("Failed to persist merged state",
			zap.String("path", s.StateRepo.FilePath()), zap.Error(err))
		monitoring.StateMerges.WithLabelValues("write_error").Inc()
		return nil, util.ErrStateWrite
	}

	monitoring.StateMerges.WithLabelValues("success").Inc()
	return merged, nil
}

// Get returns the raw persisted document bytes, ErrStateNotFound when no
// document has been saved yet.
func (s *StateService) Get() ([]byte, error) {
	if !s.StateRepo.Exists() {
		return nil, util.ErrStateNotFound
	}
	data, err := s.StateRepo.Raw()
	if err != nil {
		return nil, util.ErrStateNotFound
	}
	return data, nil
}

// pickPresent implements the present-wins scalar rule: field presence in the
// incoming document decides, not truthiness of the value.
func pickPresent(incoming, existing model.ProgressState, field string, fallback interface{}) interface{} {
	if val, ok := incoming[field]; ok {
		return val
	}
	if val, ok := existing[field]; ok {
		return val
	}
	return fallback
}
