// Package extract scans free-text questions for a candidate store name.
// Candidates are advisory; callers re-validate them through the matcher.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/storeq/storeq/internal/directory"
)

// Strategy is one way of pulling a candidate store name out of a question.
// Strategies are tried in a fixed priority order; the first hit wins.
type Strategy interface {
	Extract(text string) (candidate string, ok bool)
}

// Extractor runs an ordered list of strategies over a question.
type Extractor struct {
	strategies []Strategy
}

// New returns the default extractor for a directory: "for <name>", then
// "in <name>", then a scan for known names and aliases (longest first).
func New(dir *directory.Directory) *Extractor {
	return &Extractor{strategies: []Strategy{
		Preposition("for"),
		Preposition("in"),
		&DirectoryScan{Dir: dir},
	}}
}

// Extract returns the first candidate any strategy produces.
func (e *Extractor) Extract(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, s := range e.strategies {
		if c, ok := s.Extract(text); ok {
			return c, true
		}
	}
	return "", false
}

// preposition captures the text following "<word> " up to sentence-ending
// punctuation or end of string.
type preposition struct {
	word string
	re   *regexp.Regexp
}

// Preposition returns a strategy capturing the text after the given word.
func Preposition(word string) Strategy {
	return &preposition{
		word: word,
		re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\s+([^.?!]+)`),
	}
}

func (p *preposition) Extract(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	c := strings.TrimSpace(m[1])
	if c == "" {
		return "", false
	}
	return c, true
}

// DirectoryScan tests every known store name and alias as a case-insensitive
// substring of the question, longest entry first so a short alias never
// shadows a longer overlapping name. On a hit it returns the owning record's
// canonical storeName.
type DirectoryScan struct {
	Dir *directory.Directory
}

type scanEntry struct {
	needle    string
	canonical string
}

func (s *DirectoryScan) Extract(text string) (string, bool) {
	haystack := directory.Normalize(text)
	if haystack == "" {
		return "", false
	}
	var entries []scanEntry
	for _, r := range s.Dir.All() {
		entries = append(entries, scanEntry{directory.Normalize(r.StoreName), r.StoreName})
		for _, a := range r.Aliases {
			entries = append(entries, scanEntry{directory.Normalize(a), r.StoreName})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].needle) > len(entries[j].needle)
	})
	for _, e := range entries {
		if e.needle != "" && strings.Contains(haystack, e.needle) {
			return e.canonical, true
		}
	}
	return "", false
}
