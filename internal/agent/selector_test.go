package agent

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

func TestRoster(t *testing.T) {
	personas := Roster()
	assert.Len(t, personas, 10)

	counts := map[SkillLevel]int{}
	for _, p := range personas {
		counts[p.SkillLevel]++
	}
	assert.Equal(t, 5, counts[SkillExpert])
	assert.Equal(t, 4, counts[SkillIntermediate])
	assert.Equal(t, 1, counts[SkillNovice])

	personas[0].Name = "changed"
	assert.NotEqual(t, "changed", Roster()[0].Name)
}

func TestSelector_Classify(t *testing.T) {
	s := NewSelector(fixedRand{})

	cases := []struct {
		category  string
		wantID    string
		wantMatch MatchKind
	}{
		{"HISTORY", "history-buff", MatchSpecialty},
		{"U.S. HISTORY", "history-buff", MatchSpecialty},
		{"ANCIENT ROME", "history-buff", MatchKeyword},
		{"WORLD CAPITALS", "globetrotter", MatchKeyword},
		{"SCIENCE", "lab-coat", MatchSpecialty},
		{"THE ANIMAL KINGDOM", "lab-coat", MatchKeyword},
		{"FAMOUS WARS", "history-buff", MatchKeyword},
		{"EUROPEAN COUNTRIES", "globetrotter", MatchKeyword},
		{"AMERICAN LITERATURE", "bookworm", MatchSpecialty},
		{"OLYMPIC GAMES", "coach", MatchKeyword},
		{"MOVIES & MUSIC", "cinephile", MatchSpecialty},
		{"FILM SCORES & SONGS", "cinephile", MatchKeyword},
		{"ROCK & ROLL", "music-fan", MatchKeyword},
		{"ACADEMY AWARDS", "cinephile", MatchKeyword},
		{"WARNER BROS. FILMS", "cinephile", MatchKeyword},
		{"GENERAL KNOWLEDGE", "generalist", MatchSpecialty},
	}

	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			p, match := s.Classify(tc.category)
			assert.Equal(t, tc.wantID, p.ID)
			assert.Equal(t, tc.wantMatch, match)
		})
	}
}

func TestSelector_Default(t *testing.T) {
	p, match := NewSelector(fixedRand{n: 0}).Classify("POTENT POTABLES")
	assert.Equal(t, MatchDefault, match)
	assert.Equal(t, "generalist", p.ID)

	p, match = NewSelector(fixedRand{n: 1}).Classify("POTENT POTABLES")
	assert.Equal(t, MatchDefault, match)
	assert.Equal(t, "novice", p.ID)

	_, match = NewSelector(fixedRand{}).Classify("   ")
	assert.Equal(t, MatchDefault, match)
}

func TestSelector_KeywordsMatchWholeWords(t *testing.T) {
	s := NewSelector(fixedRand{})

	for _, category := range []string{"COOKING", "SOFTWARE", "ROCKETS", "STATESMEN", "PLAYGROUNDS"} {
		t.Run(category, func(t *testing.T) {
			_, match := s.Classify(category)
			assert.Equal(t, MatchDefault, match)
		})
	}
}

func TestSelector_DefaultIsUniformOverGeneralists(t *testing.T) {
	s := NewSelector(rand.New(rand.NewPCG(1, 2)))

	seen := map[string]int{}
	for i := 0; i < 400; i++ {
		seen[s.Select("POTENT POTABLES").ID]++
	}

	assert.Len(t, seen, 2)
	assert.Greater(t, seen["generalist"], 100)
	assert.Greater(t, seen["novice"], 100)
}

func TestSpecialtyMatches(t *testing.T) {
	assert.True(t, SpecialtyMatches("WORLD HISTORY", "history"))
	assert.True(t, SpecialtyMatches("POP", "pop culture"))
	assert.False(t, SpecialtyMatches("OPERA", "history"))
	assert.False(t, SpecialtyMatches("", "history"))
	assert.False(t, SpecialtyMatches("HISTORY", ""))
}
