package models

import (
	"encoding/json"
	"sort"

	"github.com/wordspark/echo/internal/phonetic"
)

// Word is a row of the Words table. Optional columns are nil when NULL.
// PartsOfSpeech and DailySubstitutes hold raw JSON.
type Word struct {
	ID               int64   `json:"id"`
	Text             string  `json:"word"`
	Phonetic         *string `json:"phonetic"`
	PartsOfSpeechRaw *string `json:"parts_of_speech"`
	ExampleSentence  *string `json:"example_sentence"`
	SubstitutesRaw   *string `json:"daily_substitutes"`
	UsageAnalysis    *string `json:"usage_analysis"`
}

// Substitute is an everyday alternative to a word and the scenario it fits.
type Substitute struct {
	Substitute string `json:"substitute"`
	Scenario   string `json:"scenario"`
}

type partOfSpeechEntry struct {
	Pos      *string   `json:"pos"`
	Meanings *[]string `json:"meanings"`
}

type substituteEntry struct {
	Substitute *string `json:"substitute"`
	Scenario   *string `json:"scenario"`
}

// PartsOfSpeech decodes the part-of-speech column into pos -> meanings.
// Entries without a pos or meanings are skipped. Returns nil when the
// column is NULL or not a JSON array of objects.
func (w Word) PartsOfSpeech() map[string][]string {
	if w.PartsOfSpeechRaw == nil {
		return nil
	}
	var entries []partOfSpeechEntry
	if err := json.Unmarshal([]byte(*w.PartsOfSpeechRaw), &entries); err != nil {
		return nil
	}
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		if e.Pos == nil || e.Meanings == nil {
			continue
		}
		out[*e.Pos] = *e.Meanings
	}
	return out
}

var meaningPriority = []string{"n.", "v.", "adj."}

// PrimaryMeaning returns the first meaning, preferring nouns, then verbs,
// then adjectives, then the remaining parts of speech in name order.
func (w Word) PrimaryMeaning() *string {
	pos := w.PartsOfSpeech()
	if pos == nil {
		return nil
	}
	for _, p := range meaningPriority {
		if m := pos[p]; len(m) > 0 {
			return &m[0]
		}
	}

	rest := make([]string, 0, len(pos))
	for p := range pos {
		rest = append(rest, p)
	}
	sort.Strings(rest)
	for _, p := range rest {
		if m := pos[p]; len(m) > 0 {
			return &m[0]
		}
	}
	return nil
}

// Substitutes decodes the substitutes column. Entries missing either field
// are dropped. Returns nil on NULL or malformed JSON.
func (w Word) Substitutes() []Substitute {
	if w.SubstitutesRaw == nil {
		return nil
	}
	var entries []substituteEntry
	if err := json.Unmarshal([]byte(*w.SubstitutesRaw), &entries); err != nil {
		return nil
	}
	out := make([]Substitute, 0, len(entries))
	for _, e := range entries {
		if e.Substitute == nil || e.Scenario == nil {
			continue
		}
		out = append(out, Substitute{Substitute: *e.Substitute, Scenario: *e.Scenario})
	}
	return out
}

// IPA returns the phonetic column converted from ARPAbet, or nil.
func (w Word) IPA() *string {
	if w.Phonetic == nil {
		return nil
	}
	ipa := phonetic.ToIPA(*w.Phonetic)
	return &ipa
}

// WordDetail is a word together with its decoded columns.
type WordDetail struct {
	Word
	IPA            *string             `json:"ipa"`
	Meanings       map[string][]string `json:"meanings"`
	PrimaryMeaning *string             `json:"primary_meaning"`
	Substitutes    []Substitute        `json:"substitutes"`
}

func (w Word) Detail() WordDetail {
	return WordDetail{
		Word:           w,
		IPA:            w.IPA(),
		Meanings:       w.PartsOfSpeech(),
		PrimaryMeaning: w.PrimaryMeaning(),
		Substitutes:    w.Substitutes(),
	}
}

// Pronunciation is a row of the Pronunciations table, keyed by the
// upper-cased word.
type Pronunciation struct {
	Word    string `json:"word"`
	Arpabet string `json:"arpabet"`
}

func (p Pronunciation) IPA() string {
	return phonetic.ToIPA(p.Arpabet)
}

// PronunciationResult is a resolved pronunciation. Source is "dictionary"
// for a Pronunciations hit and "word" when it came from the word's own
// phonetic column.
type PronunciationResult struct {
	Word    string `json:"word"`
	Arpabet string `json:"arpabet"`
	IPA     string `json:"ipa"`
	Source  string `json:"source"`
}

// ImportResult summarises one word import.
type ImportResult struct {
	Received int `json:"received"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Queued   int `json:"queued"`
}
