package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	source := "Mitochondria are the powerhouse of the cell. 100% true!"

	prompt := BuildPrompt(source)

	assert.Contains(t, prompt, `"`+source+`"`)
	assert.Contains(t, prompt, "3-question multiple-choice quiz")
	for _, marker := range []string{"a) Option", "b) Option", "c) Option", "d) Option", "Answer: b)"} {
		assert.Contains(t, prompt, marker)
	}
	assert.Equal(t, prompt, BuildPrompt(source))
}

func TestBuildPrompt_FormatSectionParses(t *testing.T) {
	prompt := BuildPrompt("anything")
	_, format, found := strings.Cut(prompt, "Format:\n")
	assert.True(t, found)

	got := Parse(format)

	if assert.Len(t, got, 1) {
		assert.Equal(t, "Question", got[0].Question)
		assert.Equal(t, "Option", got[0].Answer)
	}
}
