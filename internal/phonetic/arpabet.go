// Package phonetic converts CMU-style ARPAbet transcriptions to IPA.
package phonetic

import (
	"sort"
	"strings"
)

var arpabetToIPA = map[string]string{
	// vowels without stress marker
	"AA": "ɑ:", "AE": "æ", "AH": "ʌ", "AO": "ɔ", "AW": "aʊ",
	"AY": "aɪ", "EH": "ɛ", "ER": "ɝ", "EY": "eɪ", "IH": "ɪ",
	"IY": "i:", "OW": "oʊ", "OY": "ɔɪ", "UH": "ʊ", "UW": "u:",

	// primary stress
	"AA1": "ˈɑ:", "AE1": "ˈæ", "AH1": "ˈʌ", "AO1": "ˈɔ", "AW1": "ˈaʊ",
	"AY1": "ˈaɪ", "EH1": "ˈɛ", "ER1": "ˈər", "EY1": "ˈeɪ", "IH1": "ˈɪ",
	"IY1": "ˈi:", "OW1": "ˈoʊ", "OY1": "ˈɔɪ", "UH1": "ˈʊ", "UW1": "ˈu:",

	// secondary stress
	"AA2": "ˌɑ:", "AE2": "ˌæ", "AH2": "ˌʌ", "AO2": "ˌɔ", "AW2": "ˌaʊ",
	"AY2": "ˌaɪ", "EH2": "ˌɛ", "ER2": "ˌər", "EY2": "ˌeɪ", "IH2": "ˌɪ",
	"IY2": "ˌi:", "OW2": "ˌoʊ", "OY2": "ˌɔɪ", "UH2": "ˌʊ", "UW2": "ˌu:",

	// unstressed
	"AA0": "ə", "AE0": "æ", "AH0": "ə", "AO0": "ɔ", "AW0": "aʊ",
	"AY0": "aɪ", "EH0": "ɛ", "ER0": "ər", "EY0": "eɪ", "IH0": "ɪ",
	"IY0": "i:", "OW0": "oʊ", "OY0": "ɔɪ", "UH0": "ʊ", "UW0": "u:",

	// consonants
	"B": "b", "CH": "tʃ", "D": "d", "DH": "ð", "F": "f", "G": "ɡ",
	"HH": "h", "JH": "dʒ", "K": "k", "L": "l", "M": "m", "N": "n",
	"NG": "ŋ", "P": "p", "R": "r", "S": "s", "SH": "ʃ", "T": "t",
	"TH": "θ", "V": "v", "W": "w", "Y": "j", "Z": "z", "ZH": "ʒ",
}

// Lookup returns the IPA symbol for a single ARPAbet token.
func Lookup(token string) (string, bool) {
	ipa, ok := arpabetToIPA[token]
	return ipa, ok
}

// ToIPA converts a whitespace separated ARPAbet transcription token by token.
// Tokens missing from the table are kept as they are. Spacing is normalized:
// runs of whitespace become one space and the ends are trimmed.
func ToIPA(arpabet string) string {
	tokens := strings.Fields(arpabet)
	for i, tok := range tokens {
		if ipa, ok := arpabetToIPA[tok]; ok {
			tokens[i] = ipa
		}
	}
	return strings.Join(tokens, " ")
}

// Tokens returns every ARPAbet token known to the table, sorted.
func Tokens() []string {
	out := make([]string, 0, len(arpabetToIPA))
	for tok := range arpabetToIPA {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
