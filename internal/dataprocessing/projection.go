package dataprocessing

import (
	"fmt"
	"sort"
	"time"

	apperrors "importcli/internal/errors"
	"importcli/pkg/contracts/domain"
)

// Feature projection targets.
const (
	TargetProcessA = "ProcessA"
	TargetProcessB = "ProcessB"
)

// countColumns is the fixed order of the numeric predictors taken
// directly from the import statistics side.
var countColumns = []string{"Total", "SWB", "ZDB", "EZB", "Online", "LargeSubfields", "LargeSize"}

// ProjectFeatures builds the numeric feature matrix consumed by the
// external modeling surface. The chosen target duration is coerced to
// seconds; weekday, month and year are one-hot encoded. Weekday and
// month columns cover the full calendar so the matrix shape does not
// depend on which days happen to appear; year columns are emitted for
// the years observed, sorted. Rows missing the target or the import
// statistics side are dropped, mirroring how the regression treats
// incomplete observations.
func ProjectFeatures(records []domain.MergedRecord, target string) (domain.FeatureMatrix, error) {
	if target != TargetProcessA && target != TargetProcessB {
		return domain.FeatureMatrix{}, apperrors.NewValidationError(
			fmt.Sprintf("unknown projection target %q", target), nil)
	}

	years := observedYears(records)
	columns := projectionColumns(years)

	matrix := domain.FeatureMatrix{
		TargetName: target,
		Columns:    columns,
	}

	for _, rec := range records {
		var targetDuration *time.Duration
		if target == TargetProcessA {
			targetDuration = rec.ProcessA
		} else {
			targetDuration = rec.ProcessB
		}

		seconds, ok := DurationSeconds(targetDuration)
		if !ok || !rec.HasImportStats() {
			continue
		}

		row := make([]float64, 0, len(columns))
		row = append(row,
			float64(*rec.Total),
			float64(*rec.SWB),
			float64(*rec.ZDB),
			float64(*rec.EZB),
			float64(*rec.Online),
			float64(*rec.LargeSubfields),
			float64(*rec.LargeSize),
		)
		for wd := 1; wd <= 7; wd++ {
			row = append(row, oneHot(rec.Weekday == wd))
		}
		for m := 1; m <= 12; m++ {
			row = append(row, oneHot(rec.Month == m))
		}
		for _, y := range years {
			row = append(row, oneHot(rec.Year == y))
		}

		matrix.Rows = append(matrix.Rows, row)
		matrix.Target = append(matrix.Target, float64(seconds))
	}

	return matrix, nil
}

func projectionColumns(years []int) []string {
	columns := make([]string, 0, len(countColumns)+7+12+len(years))
	columns = append(columns, countColumns...)
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		columns = append(columns, "Weekday_"+wd.String())
	}
	columns = append(columns, "Weekday_"+time.Sunday.String())
	for m := time.January; m <= time.December; m++ {
		columns = append(columns, "Month_"+m.String())
	}
	for _, y := range years {
		columns = append(columns, fmt.Sprintf("Year_%d", y))
	}
	return columns
}

func observedYears(records []domain.MergedRecord) []int {
	seen := make(map[int]bool)
	for _, rec := range records {
		seen[rec.Year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func oneHot(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
