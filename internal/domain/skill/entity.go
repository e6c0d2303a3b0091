package skill

import "strings"

type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryTool      Category = "tool"
	CategoryDomain    Category = "domain"
	CategorySoft      Category = "soft"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryTool, CategoryDomain, CategorySoft:
		return true
	default:
		return false
	}
}

type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Synonyms []string `json:"synonyms"`
}

// Matches reports whether an already-normalized user skill names s,
// either by its canonical name or one of its synonyms.
func (s Skill) Matches(userSkill string) bool {
	if strings.EqualFold(userSkill, s.Name) {
		return true
	}
	for _, syn := range s.Synonyms {
		if strings.EqualFold(userSkill, syn) {
			return true
		}
	}
	return false
}
