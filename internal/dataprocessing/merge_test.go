package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importcli/pkg/contracts/domain"
)

func durationPtr(d time.Duration) *time.Duration { return &d }

func TestMergeRecords_FullOuterJoin(t *testing.T) {
	jan4 := date(2021, time.January, 4)
	jan5 := date(2021, time.January, 5)
	jan6 := date(2021, time.January, 6)

	times := []domain.TimeRecord{
		{Date: jan4, ProcessA: durationPtr(45 * time.Minute), ProcessB: durationPtr(70 * time.Minute)},
		{Date: jan5, ProcessA: durationPtr(30 * time.Minute)},
	}
	imports := []domain.ImportRecord{
		{Date: jan4, Total: 500, SWB: 200, ZDB: 150, EZB: 100, Online: 50, LargeSubfields: 3, LargeSize: 1},
		{Date: jan6, Total: 320},
	}

	merged, err := MergeRecords(times, imports)
	require.NoError(t, err)

	// One row per distinct date across both inputs.
	require.Len(t, merged, 3)
	assert.Equal(t, jan4, merged[0].Date)
	assert.Equal(t, jan5, merged[1].Date)
	assert.Equal(t, jan6, merged[2].Date)

	// Date present on both sides carries both.
	require.NotNil(t, merged[0].Total)
	assert.Equal(t, int64(500), *merged[0].Total)
	require.NotNil(t, merged[0].ProcessA)
	assert.Equal(t, 45*time.Minute, *merged[0].ProcessA)

	// Date known only to the time log has absent import statistics.
	assert.Nil(t, merged[1].Total)
	assert.Nil(t, merged[1].SWB)
	assert.False(t, merged[1].HasImportStats())
	require.NotNil(t, merged[1].ProcessA)
	assert.Nil(t, merged[1].ProcessB)

	// Date known only to the import log has absent durations.
	assert.Nil(t, merged[2].ProcessA)
	assert.Nil(t, merged[2].ProcessB)
	assert.False(t, merged[2].HasDurations())
	require.NotNil(t, merged[2].Total)
	assert.Equal(t, int64(320), *merged[2].Total)
}

func TestMergeRecords_RowCountInvariant(t *testing.T) {
	var times []domain.TimeRecord
	var imports []domain.ImportRecord

	distinct := make(map[time.Time]bool)
	for d := 1; d <= 10; d++ {
		day := date(2021, time.February, d)
		if d%2 == 0 {
			times = append(times, domain.TimeRecord{Date: day})
			distinct[day] = true
		}
		if d%3 == 0 {
			imports = append(imports, domain.ImportRecord{Date: day, Total: int64(d)})
			distinct[day] = true
		}
	}

	merged, err := MergeRecords(times, imports)
	require.NoError(t, err)
	assert.Len(t, merged, len(distinct))
}

func TestMergeRecords_DuplicateDateFatal(t *testing.T) {
	jan4 := date(2021, time.January, 4)

	t.Run("import log", func(t *testing.T) {
		_, err := MergeRecords(nil, []domain.ImportRecord{
			{Date: jan4, Total: 500},
			{Date: jan4, Total: 480},
		})
		assert.Error(t, err)
	})

	t.Run("time log", func(t *testing.T) {
		_, err := MergeRecords([]domain.TimeRecord{
			{Date: jan4},
			{Date: jan4},
		}, nil)
		assert.Error(t, err)
	})
}

func TestMergeRecords_Empty(t *testing.T) {
	merged, err := MergeRecords(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}
