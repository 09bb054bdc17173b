package scan

// FlattenQuality flattens a nested quality result into the flat UI shape.
// A result without rules yields an empty rule list, not an error.
func FlattenQuality(result QualityResult) FormattedQuality {
	out := FormattedQuality{
		Dimensions: make([]QualityDimension, 0, len(result.Dimensions)),
		Rules:      make([]QualityRule, 0, len(result.Rules)),
	}

	for _, dim := range result.Dimensions {
		out.Dimensions = append(out.Dimensions, QualityDimension{
			Dimension: DimensionName{Name: dim.Name},
			Score:     dim.Score,
			Passed:    dim.Passed,
		})
	}

	for _, rule := range result.Rules {
		out.Rules = append(out.Rules, QualityRule{
			Column:           rule.Column,
			Dimension:        rule.Dimension,
			Passed:           rule.Passed,
			PassRatio:        rule.PassRatio,
			PassedCount:      rule.PassedCount,
			EvaluatedCount:   rule.EvaluatedCount,
			FailingRowsQuery: rule.FailingRowsQuery,
			Rule:             ruleSpec(rule.Expectation),
		})
	}

	return out
}

func ruleSpec(exp Expectation) RuleSpec {
	spec := RuleSpec{}
	switch exp.Kind {
	case ExpectationNonNull:
		spec.NonNull = boolPtr(true)
	case ExpectationUniqueness:
		spec.Uniqueness = boolPtr(true)
	case ExpectationSet:
		values := exp.Values
		if values == nil {
			values = []string{}
		}
		spec.Set = &SetExpectation{Values: values}
	case ExpectationRowCondition:
		spec.RowCondition = &RowConditionExpectation{SQLExpression: exp.SQLExpression}
	}
	return spec
}

// FlattenProfile flattens a nested profile result. Null and distinct
// counts are derived from the row count and the corresponding ratio,
// truncated to integers, and stay zero when the ratio is absent.
func FlattenProfile(result ProfileResult) FormattedProfile {
	out := FormattedProfile{
		RowCount: result.RowCount,
		Fields:   make([]FieldProfile, 0, len(result.Fields)),
	}

	for _, field := range result.Fields {
		profile := FieldProfile{
			Name:       field.Name,
			Type:       field.Type,
			Mode:       field.Mode,
			TopNValues: []TopValue{},
		}

		if info := field.Profile; info != nil {
			if info.NonNullRatio != nil {
				profile.NullCount = truncCount(result.RowCount, 1-*info.NonNullRatio)
			}
			if info.DistinctRatio != nil {
				profile.DistinctRatio = *info.DistinctRatio
				profile.DistinctCount = truncCount(result.RowCount, *info.DistinctRatio)
			}
			for _, top := range info.TopNValues {
				profile.TopNValues = append(profile.TopNValues, TopValue{
					Value: top.Value,
					Count: top.Count,
					Ratio: top.Ratio,
				})
			}
			if sp := info.StringProfile; sp != nil {
				profile.Profile = StringLengths{
					MinLength: sp.MinLength,
					MaxLength: sp.MaxLength,
					AvgLength: sp.AverageLength,
				}
			}
		}

		out.Fields = append(out.Fields, profile)
	}

	return out
}

// truncCount truncates rowCount*ratio to an integer. The epsilon absorbs
// the float error of ratio arithmetic like 1-0.9 without turning
// truncation into rounding.
func truncCount(rowCount int64, ratio float64) int64 {
	return int64(float64(rowCount)*ratio + 1e-9)
}

func boolPtr(v bool) *bool {
	return &v
}
