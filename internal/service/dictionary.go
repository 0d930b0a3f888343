package service

import (
	"fmt"
	"strings"
	"sync"

	"echolingo/internal/domain"
)

// DictionaryService serves word details from a small built-in table, with
// generated fallback entries for unknown words. Results are cached in memory.
type DictionaryService struct {
	mu    sync.RWMutex
	cache map[string]domain.WordDetail
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService() *DictionaryService {
	return &DictionaryService{cache: make(map[string]domain.WordDetail)}
}

// Lookup returns the dictionary entry for a word
func (s *DictionaryService) Lookup(word string) domain.WordDetail {
	normalized := strings.ToLower(strings.TrimSpace(word))

	s.mu.RLock()
	cached, ok := s.cache[normalized]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	detail := buildWordDetail(normalized)

	s.mu.Lock()
	s.cache[normalized] = detail
	s.mu.Unlock()

	return detail
}

// ClearCache drops all cached entries
func (s *DictionaryService) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]domain.WordDetail)
	s.mu.Unlock()
}

func buildWordDetail(word string) domain.WordDetail {
	if entry, ok := builtinDictionary[word]; ok {
		detail := entry
		detail.Word = word
		if detail.Phonetic == "" {
			detail.Phonetic = "/" + word + "/"
		}
		detail.Difficulty = wordDifficulty(word)
		return detail
	}

	return domain.WordDetail{
		Word:     word,
		Phonetic: "/" + word + "/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "n./v.", Definitions: []string{word}},
		},
		Examples: []string{
			fmt.Sprintf("This is an example sentence with %s.", word),
			fmt.Sprintf("Would you like to use %s in this context?", word),
		},
		Synonyms:   []string{},
		Difficulty: wordDifficulty(word),
	}
}

// wordDifficulty grades a word by length: up to 4 letters easy, up to 8
// medium, longer hard.
func wordDifficulty(word string) string {
	switch {
	case len(word) <= 4:
		return "easy"
	case len(word) <= 8:
		return "medium"
	default:
		return "hard"
	}
}

var builtinDictionary = map[string]domain.WordDetail{
	"hello": {
		Phonetic: "/həˈloʊ/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "int.", Definitions: []string{"used as a greeting or to attract attention"}},
		},
		Examples: []string{
			"Hello, how are you doing?",
			"She said hello to me with a smile.",
		},
		Synonyms: []string{"hi", "hey", "greetings"},
	},
	"thank": {
		Phonetic: "/θæŋk/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "v.", Definitions: []string{"to express gratitude to someone"}},
		},
		Examples: []string{
			"Thank you for your help.",
			"I want to thank everyone for coming.",
		},
		Synonyms: []string{"appreciate", "grateful"},
	},
	"help": {
		Phonetic: "/help/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "v./n.", Definitions: []string{"to assist someone", "aid or assistance"}},
		},
		Examples: []string{
			"Can you help me with this?",
			"Thank you for your help.",
		},
		Synonyms: []string{"assist", "support", "aid"},
	},
	"please": {
		Phonetic: "/pliːz/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "adv.", Definitions: []string{"used to make a polite request"}},
		},
		Examples: []string{
			"Please close the door.",
			"Could you please help me?",
		},
		Synonyms: []string{"kindly"},
	},
	"goodbye": {
		Phonetic: "/ɡʊdˈbaɪ/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "int./n.", Definitions: []string{"a farewell when parting"}},
		},
		Examples: []string{
			"Goodbye, see you tomorrow!",
			"She said goodbye to her friends.",
		},
		Synonyms: []string{"farewell", "bye", "see you"},
	},
	"meeting": {
		Phonetic: "/ˈmiːtɪŋ/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "n.", Definitions: []string{"an assembly of people for discussion"}},
		},
		Examples: []string{
			"We have a meeting at 3 PM.",
			"The meeting was very productive.",
		},
		Synonyms: []string{"conference", "session", "gathering"},
	},
	"report": {
		Phonetic: "/rɪˈpɔːrt/",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "n./v.", Definitions: []string{"a written account of something", "to give information about something"}},
		},
		Examples: []string{
			"Please submit your report by Friday.",
			"I need to report this issue.",
		},
		Synonyms: []string{"document", "account", "statement"},
	},
}
