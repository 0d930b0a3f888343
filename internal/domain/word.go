package domain

// Meaning is one part-of-speech entry in a dictionary lookup
type Meaning struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Definitions  []string `json:"definitions"`
}

// WordDetail is a dictionary entry for a single target-language word
type WordDetail struct {
	Word       string    `json:"word"`
	Phonetic   string    `json:"phonetic"`
	Meanings   []Meaning `json:"meanings"`
	Examples   []string  `json:"examples"`
	Synonyms   []string  `json:"synonyms"`
	Difficulty string    `json:"difficulty"`
}
