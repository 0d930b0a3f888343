package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionaryService_Lookup_Builtin(t *testing.T) {
	s := NewDictionaryService()

	detail := s.Lookup("hello")

	assert.Equal(t, "hello", detail.Word)
	assert.Equal(t, "/həˈloʊ/", detail.Phonetic)
	assert.Contains(t, detail.Synonyms, "hi")
	assert.NotEmpty(t, detail.Meanings)
	assert.NotEmpty(t, detail.Examples)
}

func TestDictionaryService_Lookup_NormalizesInput(t *testing.T) {
	s := NewDictionaryService()

	detail := s.Lookup("  Hello ")

	assert.Equal(t, "hello", detail.Word)
	assert.Equal(t, "/həˈloʊ/", detail.Phonetic)
}

func TestDictionaryService_Lookup_GeneratedFallback(t *testing.T) {
	s := NewDictionaryService()

	detail := s.Lookup("serendipity")

	assert.Equal(t, "serendipity", detail.Word)
	assert.Equal(t, "/serendipity/", detail.Phonetic)
	assert.Len(t, detail.Meanings, 1)
	assert.Len(t, detail.Examples, 2)
	assert.Contains(t, detail.Examples[0], "serendipity")
	assert.Empty(t, detail.Synonyms)
	assert.Equal(t, "hard", detail.Difficulty)
}

func TestWordDifficulty(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"tea", "easy"},
		{"wood", "easy"},
		{"woods", "medium"},
		{"absolute", "medium"},
		{"wonderful", "hard"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, wordDifficulty(tt.word), "word %q", tt.word)
	}
}

func TestDictionaryService_CachesLookups(t *testing.T) {
	s := NewDictionaryService()

	first := s.Lookup("meeting")
	second := s.Lookup("meeting")

	assert.Equal(t, first, second)

	s.ClearCache()
	third := s.Lookup("meeting")
	assert.Equal(t, first, third)
}
