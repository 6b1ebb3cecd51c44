package domain

import (
	"context"
)

// FeatureMatrix is the numeric projection of the merged table consumed
// by the modeling surface: duration targets coerced to seconds and
// categorical calendar fields one-hot encoded. Rows align with Target;
// every row has exactly len(Columns) values.
type FeatureMatrix struct {
	TargetName string      `json:"target_name"`
	Columns    []string    `json:"columns"`
	Rows       [][]float64 `json:"rows"`
	Target     []float64   `json:"target"`
}

// FeatureImportance is a per-feature score returned by a trained model.
type FeatureImportance struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
}

// ImportanceReport is the aggregate result of a model fit.
type ImportanceReport struct {
	TargetName string              `json:"target_name"`
	Scores     []FeatureImportance `json:"scores"`
}

// ImportanceModel is the external statistics/ML collaborator. It trains
// a regression model on the feature matrix and returns per-feature
// importance scores. Implementations live outside this repository.
type ImportanceModel interface {
	Fit(ctx context.Context, m FeatureMatrix) (ImportanceReport, error)
}

// ChartRenderer is the external charting/report-rendering collaborator.
// It consumes the merged table and produces visual summaries.
// Implementations live outside this repository.
type ChartRenderer interface {
	Render(ctx context.Context, records []MergedRecord) error
}
