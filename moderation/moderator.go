package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator masks forbidden words in outbound replies.
// Matching is done on a normalized copy of the text (lower case, leet speak folded,
// punctuation and spaces dropped) and mapped back onto the original runes.
type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// normalizedText keeps, for each normalized rune, its index in the original text.
type normalizedText struct {
	runes   []rune
	origIdx []int
}

// NewModerator builds the Aho-Corasick automaton. Words that normalize to nothing are ignored,
// and an empty dictionary yields a Moderator that leaves every text untouched.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := lo.FilterMap(censoredWords, func(word string, _ int) ([]rune, bool) {
		p := normalize(word).runes
		return p, len(p) > 0
	})

	m := &Moderator{log: log, censoredChar: censoredChar}
	if len(patterns) == 0 {
		return m, nil
	}
	m.matcher = new(goahocorasick.Machine)
	if err := m.matcher.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("Moderator ready", "patterns", len(patterns))
	return m, nil
}

// Censor returns the text with every forbidden word masked.
func (m *Moderator) Censor(text string) string {
	censored, _ := m.Inspect(text)
	return censored
}

// Inspect masks forbidden words while preserving spacing and returns the matched dictionary words.
func (m *Moderator) Inspect(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	text := normalize(original)
	if len(text.runes) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(text.runes, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(text.origIdx) {
			continue
		}
		for i := text.origIdx[start]; i <= text.origIdx[end-1]; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}
	if len(words) > 0 {
		m.log.Debug("Reply censored", "words", len(words))
	}
	return string(origRunes), words
}

func normalize(input string) normalizedText {
	origRunes := []rune(input)
	text := normalizedText{
		runes:   make([]rune, 0, len(origRunes)),
		origIdx: make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		text.runes = append(text.runes, unicode.ToLower(clean))
		text.origIdx = append(text.origIdx, i)
	}
	return text
}

// simplifyRune maps common leet speak characters back to letters.
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

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
