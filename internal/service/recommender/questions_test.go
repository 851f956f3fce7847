package recommender

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaireShape(t *testing.T) {
	require.Len(t, Questions, 30)

	sections := map[string]int{}
	ids := map[string]bool{}
	for _, q := range Questions {
		sections[q.Section]++
		assert.False(t, ids[q.ID], "duplicate question id %s", q.ID)
		ids[q.ID] = true
		assert.NotEmpty(t, q.Text)
	}

	assert.Equal(t, 6, sections["A"])
	assert.Equal(t, 8, sections["B"])
	assert.Equal(t, 11, sections["C"])
	assert.Equal(t, 5, sections["D"])

	// Ids are the stable codes q01..q30.
	for i := 1; i <= 30; i++ {
		assert.True(t, ids[fmt.Sprintf("q%02d", i)], "missing q%02d", i)
	}
}

func TestSectionCCoversEveryAreaOnce(t *testing.T) {
	covered := map[string]int{}
	for _, q := range Questions {
		if q.Section == "C" {
			require.NotEmpty(t, q.Area, "section C question %s has no area", q.ID)
			covered[q.Area]++
		} else {
			assert.Empty(t, q.Area, "non-C question %s has an area", q.ID)
		}
	}

	require.Len(t, covered, len(Areas))
	for _, area := range Areas {
		assert.Equal(t, 1, covered[area], "area %s", area)
	}
}

func TestAreaLabelsComplete(t *testing.T) {
	require.Len(t, AreaLabels, len(Areas))
	for _, area := range Areas {
		assert.NotEmpty(t, AreaLabels[area], "label for %s", area)
	}
}

func TestChoiceSets(t *testing.T) {
	for _, keyed := range []string{"plus", "minus"} {
		opts := Choices[keyed]
		require.Len(t, opts, 5, "choices[%s]", keyed)
		for _, opt := range opts {
			assert.GreaterOrEqual(t, opt.Value, 1)
			assert.LessOrEqual(t, opt.Value, 5)
			assert.NotEmpty(t, opt.Label)
		}
	}

	// The minus scale is the plus scale reversed.
	plus, minus := Choices["plus"], Choices["minus"]
	for i := range plus {
		assert.Equal(t, plus[i].Label, minus[i].Label)
		assert.Equal(t, plus[i].Value, 6-minus[i].Value)
	}
}
