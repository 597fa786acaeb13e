package techocc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// End-to-end: three crosswalked codes onto two titles, one orphan code, one
// empty-title crosswalk entry. Every expected number below is computable by
// hand from testdata_test.go.
func TestPipelineRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TechCutoff = 2.5
	cfg.DigitalCutoff = 2.1

	pipe, e := NewPipeline(cfg)
	assert.Nil(t, e)

	assert.Nil(t, pipe.Run(testTables(), testCrosswalk()))

	// two real titles survive to the classification
	assert.Equal(t, 2, len(pipe.Rows))

	byTitle := make(map[string]OccupationRankRow)
	for _, row := range pipe.Rows {
		byTitle[row.NOCTitle] = row
	}

	alpha, ok := byTitle[titleAlpha]
	assert.True(t, ok)
	beta, ok := byTitle[titleBeta]
	assert.True(t, ok)

	// merged title: mean of the two source codes' Levels (6 and 4)
	for _, el := range cfg.Elements {
		assert.Equal(t, 5.0, alpha.Values[el])
		assert.Equal(t, 2.0, beta.Values[el])
		assert.Equal(t, 1, alpha.Ranks[el])
		assert.Equal(t, 2, beta.Ranks[el])
	}

	// harmonic mean of equal (rank+1) terms
	assert.InDelta(t, 2.0, alpha.HarmRank, 1e-12)
	assert.InDelta(t, 2.0, alpha.HarmRankDigital, 1e-12)
	assert.InDelta(t, 2.0, alpha.HarmRankNoTel, 1e-12)
	assert.InDelta(t, 3.0, beta.HarmRank, 1e-12)

	assert.Equal(t, 1, alpha.Tech)
	assert.Equal(t, LabelDigital, alpha.DigitalLabel)
	assert.Equal(t, 1, alpha.TechNoTel)
	assert.Equal(t, 0, beta.Tech)
	assert.Equal(t, "", beta.DigitalLabel)
	assert.Equal(t, 0, beta.TechNoTel)

	// split code and name
	assert.Equal(t, "1111", alpha.NOCCode)
	assert.Equal(t, "Alpha occupation", alpha.NOCName)

	// the aggregated table stays around for the PCA validator
	assert.NotEqual(t, 0, len(pipe.Aggregated))
}

func TestPipelineBadInputs(t *testing.T) {
	pipe, e := NewPipeline(nil) // nil config falls back to defaults
	assert.Nil(t, e)

	assert.NotNil(t, pipe.Run(testTables(), nil))
	assert.NotNil(t, pipe.Run(nil, testCrosswalk()))

	bad := testTables()
	bad[0].Rows[0][posValue] = "not a number"
	assert.NotNil(t, pipe.Run(bad, testCrosswalk()))

	// a broken config never builds a pipeline
	cfg := DefaultConfig()
	cfg.DigitalSubset = append(cfg.DigitalSubset, "9.Z.9.z")
	_, e = NewPipeline(cfg)
	assert.NotNil(t, e)
}
