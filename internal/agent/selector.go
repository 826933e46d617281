package agent

import (
	"strings"
	"unicode"
)

type MatchKind string

const (
	MatchSpecialty MatchKind = "specialty"
	MatchKeyword   MatchKind = "keyword"
	MatchDefault   MatchKind = "default"
	// MatchRequested marks a persona chosen by the caller.
	MatchRequested MatchKind = "requested"
)

type keywordGroup struct {
	personaID string
	keywords  []string
}

// Checked in order; the first group with a keyword among the category's
// words wins. Plural forms match through keywordMatches.
var keywordGroups = []keywordGroup{
	{"history-buff", []string{"history", "historic", "historical", "ancient", "war", "president", "presidential", "empire", "century", "revolution", "revolutionary", "king", "queen", "royal", "royalty", "dynasty"}},
	{"globetrotter", []string{"geography", "country", "capital", "city", "world", "river", "mountain", "state", "island", "continent", "lake", "ocean"}},
	{"lab-coat", []string{"science", "biology", "chemistry", "physics", "nature", "animal", "space", "astronomy", "medicine", "medical", "math", "mathematics", "element", "anatomy"}},
	{"bookworm", []string{"literature", "book", "author", "novel", "poet", "poem", "poetry", "shakespeare", "fiction", "writer", "literary", "play", "playwright"}},
	{"coach", []string{"sport", "football", "baseball", "basketball", "olympic", "olympics", "athlete", "golf", "tennis", "hockey", "soccer", "boxing"}},
	{"cinephile", []string{"movie", "film", "cinema", "hollywood", "actor", "actress", "oscar", "director", "award"}},
	{"music-fan", []string{"music", "song", "band", "singer", "opera", "composer", "album", "rock", "jazz"}},
}

type Selector struct {
	rng Rand
}

// NewSelector uses the global random source when rng is nil.
func NewSelector(rng Rand) *Selector {
	return &Selector{rng: orDefault(rng)}
}

func (s *Selector) Select(category string) Persona {
	p, _ := s.Classify(category)
	return p
}

// Classify picks a persona for category and reports which rule chose it:
// a specialty match beats a keyword match, which beats the random default.
func (s *Selector) Classify(category string) (Persona, MatchKind) {
	cat := strings.ToLower(strings.TrimSpace(category))

	if cat != "" {
		for _, p := range roster {
			if SpecialtyMatches(cat, p.Specialty) {
				return p, MatchSpecialty
			}
		}

		words := categoryWords(cat)
		for _, group := range keywordGroups {
			for _, kw := range group.keywords {
				if keywordMatches(words, kw) {
					p, _ := PersonaByID(group.personaID)
					return p, MatchKeyword
				}
			}
		}
	}

	pool := defaultPool()
	return pool[s.rng.IntN(len(pool))], MatchDefault
}

// SpecialtyMatches reports whether category and specialty contain one another,
// ignoring case. Blank input never matches.
func SpecialtyMatches(category, specialty string) bool {
	c := strings.ToLower(strings.TrimSpace(category))
	sp := strings.ToLower(strings.TrimSpace(specialty))
	if c == "" || sp == "" {
		return false
	}
	return strings.Contains(c, sp) || strings.Contains(sp, c)
}

func categoryWords(category string) []string {
	return strings.FieldsFunc(category, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// keywordMatches reports whether one of words is kw or its plural
// ("wars", "countries"). A keyword inside a longer word does not count,
// so "war" does not match "warner" and "king" does not match "kingdom".
func keywordMatches(words []string, kw string) bool {
	for _, w := range words {
		switch {
		case w == kw, w == kw+"s", w == kw+"es":
			return true
		case strings.HasSuffix(kw, "y") && w == strings.TrimSuffix(kw, "y")+"ies":
			return true
		}
	}
	return false
}

// defaultPool holds the personas whose name marks them as generalists or novices.
func defaultPool() []Persona {
	var pool []Persona
	for _, p := range roster {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "general") || strings.Contains(name, "novice") {
			pool = append(pool, p)
		}
	}
	return pool
}
