package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImportRecord_SourceCount(t *testing.T) {
	rec := ImportRecord{
		Date:   time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC),
		Total:  500,
		SWB:    200,
		ZDB:    150,
		EZB:    100,
		Online: 50,
	}

	assert.Equal(t, int64(200), rec.SourceCount(SourceSWB))
	assert.Equal(t, int64(150), rec.SourceCount(SourceZDB))
	assert.Equal(t, int64(100), rec.SourceCount(SourceEZB))
	assert.Equal(t, int64(50), rec.SourceCount(SourceOnline))
	assert.Equal(t, int64(0), rec.SourceCount(SourceCategory("GBV")))
}

func TestMergedRecord_Presence(t *testing.T) {
	total := int64(500)
	d := 45 * time.Minute

	assert.False(t, MergedRecord{}.HasImportStats())
	assert.False(t, MergedRecord{}.HasDurations())
	assert.True(t, MergedRecord{Total: &total}.HasImportStats())
	assert.True(t, MergedRecord{ProcessA: &d}.HasDurations())
	assert.True(t, MergedRecord{ProcessB: &d}.HasDurations())
}
