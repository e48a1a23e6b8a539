package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSegment(t *testing.T) {
	tests := []struct {
		pattern, name string
		want          bool
	}{
		{"2020", "2020", true},
		{"2020", "2021", false},
		{"20*", "2020", true},
		{"20*", "20", true},
		{"20*", "1920", false},
		{"*", "", true},
		{"*", "anything", true},
		{"?", "", false},
		{"?", "a", true},
		{"20??", "2020", true},
		{"20??", "202", false},
		{"20??", "20201", false},
		{"*-*", "2020-01", true},
		{"*-*", "202001", false},
		{"a*b*c", "aXXbYYc", true},
		{"a*b*c", "aXXbYY", false},
		{"*.jpg", "photo.JPG", true},
		{"photo.jpg", "photoXjpg", false},
		{"[ab]", "[ab]", true},
		{"[ab]", "a", false},
		{"a\\b", "a\\b", true},
		{"ÄLBUM*", "älbum 1", true},
		{"??", "éé", true},
		{"**", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"~"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSegment(tt.pattern, tt.name))
		})
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("/photos/20*", "/photos/2020"))
	assert.True(t, Match("/Photos/20*/JAN", "/photos/2020/jan"))
	assert.False(t, Match("/photos/20*", "/photos/2020/jan"), "segment counts differ")
	assert.False(t, Match("/photos/20*", "photos/2020"), "absolute vs relative")
	assert.True(t, Match("20*", "2020"))
	assert.False(t, Match("/other/20*", "/photos/2020"))
}

func TestHasWildcard(t *testing.T) {
	assert.True(t, HasWildcard("/a/*"))
	assert.True(t, HasWildcard("/a/b?"))
	assert.False(t, HasWildcard("/a/b"))
}
