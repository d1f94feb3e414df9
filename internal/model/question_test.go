package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasContent(t *testing.T) {
	testCases := []struct {
		name    string
		content interface{}
		want    bool
	}{
		{"non-empty string", "What is 2+2?", true},
		{"empty string", "", false},
		{"missing", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero number", float64(0), false},
		{"non-zero number", float64(3), true},
		{"empty list", []interface{}{}, false},
		{"non-empty list", []interface{}{"a"}, true},
		{"empty object", map[string]interface{}{}, false},
		{"non-empty object", map[string]interface{}{"text": "x"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := QuestionRecord{}
			if tc.content != nil {
				record["content"] = tc.content
			}
			assert.Equal(t, tc.want, record.HasContent())
		})
	}
}

func TestCompositeID(t *testing.T) {
	src := QuestionSource{
		Subject:  "math",
		Division: "algebra",
		Chapter:  "linear.json",
		Index:    4,
	}
	assert.Equal(t, "math/algebra/linear.json:4", src.ID())
}

func TestEnrichDoesNotMutateOriginal(t *testing.T) {
	record := QuestionRecord{
		"content": "Solve x+1=2",
		"options": []interface{}{"0", "1"},
	}
	src := QuestionSource{Subject: "math", Division: "algebra", Chapter: "linear.json", Index: 0}

	enriched := record.Enrich(src)

	assert.Equal(t, "math/algebra/linear.json:0", enriched["id"])
	assert.Equal(t, src, enriched["source"])
	assert.Equal(t, "Solve x+1=2", enriched["content"])

	_, hasID := record["id"]
	assert.False(t, hasID, "enrichment must not touch the source record")
	_, hasSource := record["source"]
	assert.False(t, hasSource)
}

func TestStructureSummarize(t *testing.T) {
	testCases := []struct {
		name      string
		structure Structure
		want      StructureSummary
	}{
		{
			name:      "empty",
			structure: Structure{},
			want:      StructureSummary{},
		},
		{
			name: "totals are sums of nested counts",
			structure: Structure{
				"math": {
					"algebra": {
						"linear.json":    {QuestionCount: 3},
						"quadratic.json": {QuestionCount: 2},
					},
					"geometry": {
						"angles.json": {QuestionCount: 5},
					},
				},
				"physics": {
					"mechanics": {
						"kinematics.json": {QuestionCount: 0},
					},
				},
			},
			want: StructureSummary{
				TotalSubjects:  2,
				TotalDivisions: 3,
				TotalChapters:  4,
				TotalQuestions: 10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.structure.Summarize())
		})
	}
}

func TestSortedReviewList(t *testing.T) {
	set := map[string]struct{}{
		"b/1/c.json:2": {},
		"a/1/c.json:0": {},
		"b/1/c.json:1": {},
	}
	assert.Equal(t,
		[]interface{}{"a/1/c.json:0", "b/1/c.json:1", "b/1/c.json:2"},
		SortedReviewList(set))
}
