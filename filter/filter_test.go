package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adenw/flixctl/myflix"
)

var shining = myflix.Movie{
	ID:          "m1",
	Title:       "The Shining",
	Description: "A family heads to an isolated hotel.",
	Genre:       myflix.Genre{Name: "Horror"},
	Director:    myflix.Director{Name: "Stanley Kubrick"},
	Actors:      []string{"Jack Nicholson", "Shelley Duvall"},
	Featured:    true,
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"syntax error", `genre == "Horror`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			require.Error(t, err)
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		favorite bool
		want     bool
	}{
		{"genre equality", `genre == "Horror"`, false, true},
		{"genre mismatch", `genre == "Comedy"`, false, false},
		{"director contains", `contains(director, "kubrick")`, false, true},
		{"title startsWith", `startsWith(title, "the ")`, false, true},
		{"featured flag", `featured`, false, true},
		{"favorite flag", `favorite`, true, true},
		{"not favorite", `favorite`, false, false},
		{"actor membership", `"Jack Nicholson" in actors`, false, true},
		{"combined", `genre == "Horror" and not favorite`, false, true},
		{"combined negative", `genre == "Horror" and favorite`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expr)
			require.NoError(t, err)

			matched, err := f.Matches(shining, tt.favorite)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestString(t *testing.T) {
	f, err := Compile(`featured`)
	require.NoError(t, err)
	assert.Equal(t, `featured`, f.String())
}
