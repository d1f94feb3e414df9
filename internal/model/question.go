package model

import "fmt"

// QuestionRecord is one entry of a chapter file. Chapter files are plain JSON
// arrays of objects with no fixed schema beyond the content field, so the
// record stays an open map and unknown fields ride along untouched.
type QuestionRecord map[string]interface{}

// QuestionSource addresses a record inside the content tree.
type QuestionSource struct {
	Subject  string `json:"subject"`
	Division string `json:"division"`
	Chapter  string `json:"chapter"`
	Index    int    `json:"index"`
}

// ID returns the composite identifier "subject/division/chapter:index".
// The index is the record's position in the chapter file's raw list, counted
// before the content filter runs. Persisted progress state keys attempts by
// these ids, so the format and the raw-index rule must not change; note that
// editing a chapter file shifts indices and orphans previously issued ids.
func (s QuestionSource) ID() string {
	return fmt.Sprintf("%s/%s/%s:%d", s.Subject, s.Division, s.Chapter, s.Index)
}

// HasContent reports whether the record carries a non-empty content field.
// Empty strings, zero numbers, empty collections, false and null all count
// as missing.
func (q QuestionRecord) HasContent() bool {
	return isTruthy(q["content"])
}

func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	default:
		return true
	}
}

// Enrich returns a copy of the record with the composite id and source block
// injected. The input record is never mutated.
func (q QuestionRecord) Enrich(src QuestionSource) QuestionRecord {
	enriched := make(QuestionRecord, len(q)+2)
	for k, v := range q {
		enriched[k] = v
	}
	enriched["id"] = src.ID()
	enriched["source"] = src
	return enriched
}

// ChapterSummary holds per-chapter counts inside a structure response.
type ChapterSummary struct {
	QuestionCount int `json:"question_count"`
}

// Structure is the nested subject → division → chapter summary.
type Structure map[string]map[string]map[string]ChapterSummary

// StructureSummary carries totals derived from a Structure.
type StructureSummary struct {
	TotalSubjects  int `json:"total_subjects"`
	TotalDivisions int `json:"total_divisions"`
	TotalChapters  int `json:"total_chapters"`
	TotalQuestions int `json:"total_questions"`
}

// Summarize derives the aggregate totals by summation over the nested
// structure, so they cannot drift from the per-chapter counts.
func (s Structure) Summarize() StructureSummary {
	summary := StructureSummary{TotalSubjects: len(s)}
	for _, divisions := range s {
		summary.TotalDivisions += len(divisions)
		for _, chapters := range divisions {
			summary.TotalChapters += len(chapters)
			for _, chapter := range chapters {
				summary.TotalQuestions += chapter.QuestionCount
			}
		}
	}
	return summary
}
