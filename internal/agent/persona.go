package agent

type SkillLevel string

const (
	SkillExpert       SkillLevel = "expert"
	SkillIntermediate SkillLevel = "intermediate"
	SkillNovice       SkillLevel = "novice"
)

type Persona struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Specialty  string     `json:"specialty"`
	SkillLevel SkillLevel `json:"skill_level"`
}

// roster order is significant: the first matching specialty wins.
var roster = []Persona{
	{ID: "history-buff", Name: "Harriet the History Buff", Specialty: "history", SkillLevel: SkillExpert},
	{ID: "globetrotter", Name: "Gus the Globetrotter", Specialty: "geography", SkillLevel: SkillExpert},
	{ID: "lab-coat", Name: "Dr. Quinn Lab Coat", Specialty: "science", SkillLevel: SkillExpert},
	{ID: "bookworm", Name: "Beatrice the Bookworm", Specialty: "literature", SkillLevel: SkillExpert},
	{ID: "coach", Name: "Coach Carter", Specialty: "sports", SkillLevel: SkillExpert},
	{ID: "pop-culture", Name: "Penny Pop Culture", Specialty: "pop culture", SkillLevel: SkillIntermediate},
	{ID: "cinephile", Name: "Cyrus the Cinephile", Specialty: "movies", SkillLevel: SkillIntermediate},
	{ID: "music-fan", Name: "Melody the Music Fan", Specialty: "music", SkillLevel: SkillIntermediate},
	{ID: "generalist", Name: "Gene the Generalist", Specialty: "general knowledge", SkillLevel: SkillIntermediate},
	{ID: "novice", Name: "Ned the Novice", Specialty: "general knowledge", SkillLevel: SkillNovice},
}

// Roster returns a copy of the fixed persona list.
func Roster() []Persona {
	out := make([]Persona, len(roster))
	copy(out, roster)
	return out
}

func PersonaByID(id string) (Persona, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
