package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"name":"Kyoto"}`,
			want:  `{"name":"Kyoto"}`,
		},
		{
			name:  "markdown fence stripped",
			input: "```json\n{\"name\":\"Kyoto\"}\n```",
			want:  `{"name":"Kyoto"}`,
		},
		{
			name:  "prose around the object",
			input: "Here is your itinerary:\n{\"name\":\"Kyoto\"}\nEnjoy!",
			want:  `{"name":"Kyoto"}`,
		},
		{
			name:  "nested braces",
			input: `text {"a":{"b":[1,2]}} trailing`,
			want:  `{"a":{"b":[1,2]}}`,
		},
		{
			name:  "braces inside strings ignored",
			input: `{"note":"use {curly} and \"quotes\""} extra`,
			want:  `{"note":"use {curly} and \"quotes\""}`,
		},
		{
			name:  "top level array",
			input: "```\n[1,2,3]\n```",
			want:  `[1,2,3]`,
		},
		{
			name:  "unterminated object kept from start",
			input: `intro {"a":1`,
			want:  `{"a":1`,
		},
		{
			name:  "no json at all",
			input: "sorry, I cannot help",
			want:  "sorry, I cannot help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}

func TestValidJSON(t *testing.T) {
	assert.True(t, ValidJSON(`{"a":1}`))
	assert.True(t, ValidJSON(`[1,2]`))
	assert.False(t, ValidJSON(`{"a":`))
	assert.False(t, ValidJSON(``))
}
