// Package moderation censors blocked words in free text before it is posted
// on a poll announcement. Matching runs on a normalized rune stream so that
// leet speak, punctuation noise and casing do not defeat the dictionary.
package moderation

import (
	"log/slog"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
)

type Filter struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewFilter builds the Aho-Corasick automaton from a normalized copy of the
// blocked words list.
func NewFilter(blockedWords []string, replacement rune, log *slog.Logger) (Filter, error) {
	patterns := make([][]rune, len(blockedWords))
	for i, word := range blockedWords {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Filter{}, err
	}
	return Filter{matcher: m, replacement: replacement, log: log}, nil
}

// Sanitize replaces every blocked span with the replacement rune, preserving
// spacing and untouched characters, and returns the normalized words it hit.
func (f *Filter) Sanitize(original string) (string, []string) {
	mapping := f.normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	spans := f.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var found []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		origStart := mapping.origIdx[normStart]
		lastCharOrigIdx := mapping.origIdx[normEnd-1]
		origEnd := lastCharOrigIdx + 1

		for i := origStart; i < origEnd; i++ {
			origRunes[i] = f.replacement
		}
		found = append(found, string(span.Word))
	}

	if len(found) > 0 {
		f.log.Debug("Censored poll reason", "words", len(found), "lang", Language(original))
	}
	return string(origRunes), found
}

// Language returns the ISO 639-1 code of the detected language, for
// diagnostics only. Empty input yields an empty code.
func Language(text string) string {
	if text == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}

// normalize transforms the input into a searchable format while tracking
// original rune positions so censoring can map back onto the raw text.
func (f *Filter) normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
