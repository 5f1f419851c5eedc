package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eklavvyaaaaa/CIVIX/models"
)

func TestParseSuggestion(t *testing.T) {
	cases := []struct {
		name string
		text string
		want models.Suggestion
	}{
		{
			name: "valid category and description",
			text: `{"category": "Pothole", "description": "Deep pothole in the right lane."}`,
			want: models.Suggestion{Category: models.Pothole, Description: "Deep pothole in the right lane."},
		},
		{
			name: "unknown category is dropped, not coerced",
			text: `{"category": "Road Damage", "description": "Cracked asphalt."}`,
			want: models.Suggestion{Description: "Cracked asphalt."},
		},
		{
			name: "category labels are exact, not case-folded",
			text: `{"category": "pothole", "description": "x"}`,
			want: models.Suggestion{Description: "x"},
		},
		{
			name: "markdown fenced payload",
			text: "```json\n{\"category\": \"Graffiti\", \"description\": \"Tagging on the wall.\"}\n```",
			want: models.Suggestion{Category: models.Graffiti, Description: "Tagging on the wall."},
		},
		{
			name: "description only",
			text: `{"description": "Something is broken."}`,
			want: models.Suggestion{Description: "Something is broken."},
		},
		{
			name: "surrounding whitespace trimmed",
			text: `{"category": " Fire Hazard ", "description": "  Exposed wiring.  "}`,
			want: models.Suggestion{Category: models.FireHazard, Description: "Exposed wiring."},
		},
		{
			name: "empty object",
			text: `{}`,
			want: models.Suggestion{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSuggestion(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSuggestionRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "not json", "```\nstill not json\n```"} {
		_, err := parseSuggestion(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestClassificationPromptEnumeratesEveryCategory(t *testing.T) {
	prompt := classificationPrompt()
	for _, c := range models.Categories {
		assert.Contains(t, prompt, string(c))
	}
}
