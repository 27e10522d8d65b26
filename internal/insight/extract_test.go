package insight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONCandidates(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected interface{}
	}{
		{
			name:     "fenced object",
			text:     "Sure!\n```json\n{\"caption\":\"hi\"}\n```\nEnjoy",
			expected: map[string]interface{}{"caption": "hi"},
		},
		{
			name:     "fenced array without language",
			text:     "```\n[1, 2]\n```",
			expected: []interface{}{float64(1), float64(2)},
		},
		{
			name:     "embedded array",
			text:     "Here you go: [{\"name\":\"Ana\"}] hope it helps",
			expected: []interface{}{map[string]interface{}{"name": "Ana"}},
		},
		{
			name:     "embedded object",
			text:     "Result -> {\"city\":\"Reno\",\"tags\":[\"BBQ\"]} <- done",
			expected: map[string]interface{}{"city": "Reno", "tags": []interface{}{"BBQ"}},
		},
		{
			name:     "raw scalar",
			text:     "  42 ",
			expected: float64(42),
		},
		{
			name:     "unparseable fence falls back to bracket span",
			text:     "```\nnot json\n```\n[true]",
			expected: []interface{}{true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := ExtractJSON(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.expected, value)
		})
	}
}

func TestExtractJSONFailure(t *testing.T) {
	_, err := ExtractJSON("I could not think of anything {really}")
	require.ErrorIs(t, err, ErrNoJSON)
}
