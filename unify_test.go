package techocc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifyRatings(t *testing.T) {
	recs, e := UnifyRatings(testTables()...)
	assert.Nil(t, e)

	// 4 codes x 6 elements x 2 scales
	assert.Equal(t, 48, len(recs))

	// positional mapping holds regardless of header spellings
	r0 := recs[0]
	assert.Equal(t, codeOne, r0.ONetCode)
	assert.Equal(t, "One", r0.ONetTitle)
	assert.Equal(t, "2.B.3.b", r0.ElementID)
	assert.Equal(t, elementName("2.B.3.b"), r0.ElementName)
	assert.Equal(t, ScaleLevel, r0.ScaleID)
	assert.Equal(t, 6.0, r0.Value)

	for _, r := range recs {
		assert.NotEqual(t, "", r.ElementID)
		assert.NotEqual(t, "", r.ScaleID)
	}
}

func TestUnifyRatingsSchemaErrors(t *testing.T) {
	tabs := testTables()

	// column counts must agree across the three inputs
	bad := tabs
	bad[1].Cols = bad[1].Cols[:ratingHeader-1]
	_, e := UnifyRatings(bad...)
	assert.NotNil(t, e)

	// too few columns for the canonical schema
	_, e = UnifyRatings(RawTable{Name: "narrow", Cols: []string{"a", "b"}, Rows: nil})
	assert.NotNil(t, e)

	// unparseable value is fatal, not skipped
	tabs = testTables()
	tabs[0].Rows[0][posValue] = "n/a"
	_, e = UnifyRatings(tabs...)
	assert.NotNil(t, e)

	// empty element id violates the unification invariant
	tabs = testTables()
	tabs[2].Rows[0][posElementID] = ""
	_, e = UnifyRatings(tabs...)
	assert.NotNil(t, e)

	_, e = UnifyRatings()
	assert.NotNil(t, e)
}
