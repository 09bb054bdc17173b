package scan

// Output shapes for the UI. The key spelling is the wire contract the
// frontend was built against and mixes camel and snake case; it must not
// be normalized.

type FormattedQuality struct {
	Dimensions []QualityDimension `json:"dimensions"`
	Rules      []QualityRule      `json:"rules"`
}

type QualityDimension struct {
	Dimension DimensionName `json:"dimension"`
	Score     float64       `json:"score"`
	Passed    bool          `json:"passed"`
}

type DimensionName struct {
	Name string `json:"name"`
}

type QualityRule struct {
	Column           string   `json:"column"`
	Dimension        string   `json:"dimension"`
	Passed           bool     `json:"passed"`
	PassRatio        float64  `json:"passRatio"`
	PassedCount      int64    `json:"passedCount"`
	EvaluatedCount   int64    `json:"evaluatedCount"`
	FailingRowsQuery string   `json:"failing_rows_query"`
	Rule             RuleSpec `json:"rule"`
}

// RuleSpec always serializes all four expectation keys; the variants the
// rule does not carry are explicit nulls, never omitted.
type RuleSpec struct {
	NonNull      *bool                    `json:"non_null_expectation"`
	Uniqueness   *bool                    `json:"uniqueness_expectation"`
	Set          *SetExpectation          `json:"set_expectation"`
	RowCondition *RowConditionExpectation `json:"row_condition_expectation"`
}

type SetExpectation struct {
	Values []string `json:"values"`
}

type RowConditionExpectation struct {
	SQLExpression string `json:"sql_expression"`
}

type FormattedProfile struct {
	RowCount int64          `json:"rowCount"`
	Fields   []FieldProfile `json:"fields"`
}

// FieldProfile flattens one field of a profile result. Numeric fields
// default to zero when the upstream sub-structure is absent; none of them
// serialize as null.
type FieldProfile struct {
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Mode          string        `json:"mode"`
	NullCount     int64         `json:"nullCount"`
	DistinctCount int64         `json:"distinctCount"`
	DistinctRatio float64       `json:"distinctRatio"`
	TopNValues    []TopValue    `json:"topNValues"`
	Profile       StringLengths `json:"profile"`
}

type TopValue struct {
	Value string  `json:"value"`
	Count int64   `json:"count"`
	Ratio float64 `json:"ratio"`
}

type StringLengths struct {
	MinLength int64   `json:"minLength"`
	MaxLength int64   `json:"maxLength"`
	AvgLength float64 `json:"avgLength"`
}
