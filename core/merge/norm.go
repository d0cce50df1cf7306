package merge

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s#+]`)
	whitespace = regexp.MustCompile(`\s+`)
	keyChars   = regexp.MustCompile(`[^a-z0-9+#.\- ]+`)
	wordBreaks = regexp.MustCompile(`[_-]+`)

	// NFKD decomposition followed by dropping everything outside ASCII.
	asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
)

// Normalize folds a language name into its canonical id form: ASCII-folded,
// lowercased, "#" spelled out as "sharp", "++" as "plus plus", punctuation
// stripped, hyphen-joined. An empty input normalizes to "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "♯", "#")
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "++", " plus plus ")
	s = nonWord.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "#", " sharp ")
	s = whitespace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// MakeID mints the stable language id for a name. Names that normalize to
// nothing get a content-hash id so they still group deterministically.
func MakeID(name string) string {
	if id := Normalize(name); id != "" {
		return id
	}
	sum := sha1.Sum([]byte(name))
	return "id-" + hex.EncodeToString(sum[:])[:8]
}

// NormalizeToken unifies unicode dashes and quotes and collapses whitespace.
func NormalizeToken(s string) string {
	s = strings.TrimSpace(s)
	r := strings.NewReplacer("–", "-", "—", "-", "’", "'", "“", `"`, "”", `"`)
	s = r.Replace(s)
	return whitespace.ReplaceAllString(s, " ")
}

// NormalizeKey builds the lookup key used for cross-source matching:
// lowercased with only [a-z0-9+#.- ] retained.
func NormalizeKey(s string) string {
	s = strings.ToLower(NormalizeToken(s))
	s = keyChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Variants lists spacing/hyphen spellings of a key that should all resolve
// to the same language.
func Variants(key string) []string {
	return []string{
		key,
		strings.ReplaceAll(key, " ", "-"),
		strings.ReplaceAll(key, "-", " "),
		strings.ReplaceAll(key, " ", ""),
		strings.ReplaceAll(key, "-", ""),
	}
}

// TokenizePieces splits a cell value into matchable pieces: the whole value,
// separator-delimited parts, and underscore/hyphen-delimited words.
func TokenizePieces(s string) []string {
	pieces := []string{s}
	for _, sep := range []string{";", ",", "|", "/", `\`} {
		if strings.Contains(s, sep) {
			for _, part := range strings.Split(s, sep) {
				if part = strings.TrimSpace(part); part != "" {
					pieces = append(pieces, part)
				}
			}
		}
	}
	if strings.ContainsAny(s, "_-") {
		for _, part := range wordBreaks.Split(s, -1) {
			if part = strings.TrimSpace(part); part != "" {
				pieces = append(pieces, part)
			}
		}
	}
	return pieces
}

// Similarity returns a 0..1 string similarity ratio based on edit distance.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.Distance(a, b, nil)
	return 1 - float64(d)/float64(longest)
}
