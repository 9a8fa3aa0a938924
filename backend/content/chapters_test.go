package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversAllChapters(t *testing.T) {
	all := All()
	require.Len(t, all, TotalChapters)

	for i, ch := range all {
		assert.Equal(t, i+1, ch.Number, "chapters are in reading order")
		assert.NotEmpty(t, ch.Title)
		assert.NotEmpty(t, ch.Summary)
		assert.NotEmpty(t, ch.Questions, "every chapter has a test")
	}
}

func TestQuestionBanksAreWellFormed(t *testing.T) {
	for _, ch := range All() {
		seen := map[int]bool{}
		for _, q := range ch.Questions {
			assert.False(t, seen[q.ID], "chapter %d reuses question id %d", ch.Number, q.ID)
			seen[q.ID] = true
			assert.GreaterOrEqual(t, len(q.Options), 2)
			assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
			assert.Less(t, q.CorrectAnswer, len(q.Options), "chapter %d question %d answer index out of range", ch.Number, q.ID)
		}
	}
}

func TestGet(t *testing.T) {
	ch, ok := Get(SampleChapter)
	require.True(t, ok)
	assert.Equal(t, "The Living Wave", ch.Title)

	_, ok = Get(TotalChapters + 1)
	assert.False(t, ok)
	_, ok = Get(0)
	assert.False(t, ok)
}
