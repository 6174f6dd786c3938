package retrieval

import (
	"sort"
	"unicode"
)

// RankKeywords orders tokens by search-signal priority and keeps the top max.
// Acronyms rank highest, then ideographic and long compound terms; purely
// phonetic (kana-only) and very short tokens sink. Ties keep input order.
func RankKeywords(tokens []string, max int) []string {
	if len(tokens) <= max {
		return tokens
	}

	ranked := make([]string, len(tokens))
	copy(ranked, tokens)

	sort.SliceStable(ranked, func(i, j int) bool {
		return KeywordScore(ranked[i]) > KeywordScore(ranked[j])
	})

	return ranked[:max]
}

// KeywordScore is the priority heuristic for one patent-query keyword.
func KeywordScore(token string) int {
	runes := []rune(token)
	if len(runes) == 0 {
		return -10
	}

	score := 0

	if IsAcronym(token) {
		score += 6
	}
	if ContainsHan(token) {
		score += 3
	}
	if len(runes) >= 8 {
		score += 2
	}
	if IsKanaOnly(token) {
		score -= 3
	}
	if len(runes) <= 2 && !IsAcronym(token) {
		score -= 2
	}

	return score
}

// IsAcronym reports whether token is an all-caps ASCII technical abbreviation
// such as EUV, PA9T or PTFE. Digits are allowed, lone letters are not.
func IsAcronym(token string) bool {
	runes := []rune(token)
	if len(runes) < 2 || len(runes) > 8 {
		return false
	}

	hasLetter := false
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return hasLetter
}

func ContainsHan(token string) bool {
	for _, r := range token {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// IsKanaOnly reports whether token consists solely of phonetic Japanese
// script, which carries little signal in patent indexes.
func IsKanaOnly(token string) bool {
	seen := false
	for _, r := range token {
		if unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || r == 'ー' {
			seen = true
			continue
		}
		return false
	}
	return seen
}

// ContainsNativeScript reports whether token carries any Japanese script.
func ContainsNativeScript(token string) bool {
	for _, r := range token {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			return true
		}
	}
	return false
}
