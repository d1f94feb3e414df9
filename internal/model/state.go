package model

import "sort"

// ProgressState is the persisted quiz progress document. Clients read the
// stored file back verbatim, so the document stays an open map: recognized
// fields get merge rules, everything else passes through.
type ProgressState map[string]interface{}

// Recognized progress state fields.
const (
	FieldAttemptedQuestions   = "attemptedQuestions"
	FieldMarkedForReview      = "markedForReview"
	FieldCurrentFilter        = "currentFilter"
	FieldCurrentQuestionIndex = "currentQuestionIndex"
	FieldLastUpdated          = "lastUpdated"
)

// IsRecognizedStateField reports whether the merge engine has a dedicated
// rule for the field name.
func IsRecognizedStateField(name string) bool {
	switch name {
	case FieldAttemptedQuestions, FieldMarkedForReview,
		FieldCurrentFilter, FieldCurrentQuestionIndex, FieldLastUpdated:
		return true
	}
	return false
}

// AttemptMap extracts the named field as a map, tolerating absence and
// non-map junk from older state files.
func (s ProgressState) AttemptMap(field string) map[string]interface{} {
	if m, ok := s[field].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// ReviewSet extracts the named field as a set of composite identifiers.
// Non-string entries are skipped.
func (s ProgressState) ReviewSet(field string) map[string]struct{} {
	set := make(map[string]struct{})
	items, ok := s[field].([]interface{})
	if !ok {
		return set
	}
	for _, item := range items {
		if id, ok := item.(string); ok {
			set[id] = struct{}{}
		}
	}
	return set
}

// SortedReviewList serializes a review set back to its stored form, a sorted
// list with no duplicates.
func SortedReviewList(set map[string]struct{}) []interface{} {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	list := make([]interface{}, len(ids))
	for i, id := range ids {
		list[i] = id
	}
	return list
}
