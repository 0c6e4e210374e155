package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ImportWord is the file format for word imports. Parts of speech and
// substitutes are given as JSON values and stored as their raw text.
type ImportWord struct {
	ID              int64           `json:"id"`
	Word            string          `json:"word"`
	Phonetic        *string         `json:"phonetic"`
	PartsOfSpeech   json.RawMessage `json:"parts_of_speech"`
	ExampleSentence *string         `json:"example_sentence"`
	Substitutes     json.RawMessage `json:"daily_substitutes"`
	UsageAnalysis   *string         `json:"usage_analysis"`
}

func (w ImportWord) ToWord() Word {
	return Word{
		ID:               w.ID,
		Text:             w.Word,
		Phonetic:         w.Phonetic,
		PartsOfSpeechRaw: rawText(w.PartsOfSpeech),
		ExampleSentence:  w.ExampleSentence,
		SubstitutesRaw:   rawText(w.Substitutes),
		UsageAnalysis:    w.UsageAnalysis,
	}
}

// rawText returns nil for an absent or null value.
func rawText(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	s := string(trimmed)
	return &s
}

// DecodeImport reads a JSON array of ImportWord.
func DecodeImport(r io.Reader) ([]Word, error) {
	var entries []ImportWord
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode word import: %w", err)
	}
	words := make([]Word, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.ToWord())
	}
	return words, nil
}
