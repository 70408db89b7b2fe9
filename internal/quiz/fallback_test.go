package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: "this topic"},
		{name: "two words", text: "Photosynthesis basics", want: "this topic"},
		{name: "exactly three", text: "The water cycle", want: "The water cycle"},
		{name: "long text", text: "  The   French Revolution began in 1789. ", want: "The French Revolution"},
		{name: "newlines count as whitespace", text: "Cell\nbiology\tfor beginners", want: "Cell biology for"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Topic(tt.text))
		})
	}
}

func TestFallback_Shape(t *testing.T) {
	for _, text := range []string{"", "one", "The French Revolution began in 1789."} {
		got := Fallback(text)

		require.Len(t, got, 3)
		for _, q := range got {
			assert.Len(t, q.Options, 4)
			assert.NotEmpty(t, q.Answer)
			assert.Contains(t, q.Options, q.Answer)
			assert.NoError(t, q.Validate())
		}
	}
}

func TestFallback_InterpolatesTopic(t *testing.T) {
	got := Fallback("The French Revolution began in 1789.")

	assert.Equal(t, "What is the main subject of the text about The French Revolution?", got[0].Question)
	assert.Equal(t, "The key concepts", got[0].Answer)
	assert.Equal(t, "Informative", got[1].Answer)
	assert.Equal(t, "Descriptive", got[2].Answer)

	assert.Equal(t, "What is the main subject of the text about this topic?", Fallback("")[0].Question)
}

func TestFallback_ReturnsFreshSlices(t *testing.T) {
	first := Fallback("a b c")
	first[0].Options[0] = "mutated"

	assert.Equal(t, "The historical context", Fallback("a b c")[0].Options[0])
}
