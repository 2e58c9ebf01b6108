package match

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rgarhwal/intern-advisor/internal/profile"
)

const (
	// similarityThreshold is the minimum edit-distance similarity treated as
	// a fuzzy hit.
	similarityThreshold = 0.8

	containmentWeight = 0.9
	synonymWeight     = 0.95

	qualificationBonus = 5
	interestBonus      = 3
	internshipBonus    = 7
)

// synonyms maps a canonical skill to its accepted variations. A match counts
// when either side is the canonical term and the other is a listed variant.
var synonyms = map[string][]string{
	"python":           {"py", "python3", "python programming"},
	"javascript":       {"js", "node.js", "nodejs", "react", "angular", "vue"},
	"java":             {"java programming", "core java", "advanced java"},
	"sql":              {"mysql", "postgresql", "database", "rdbms"},
	"machine learning": {"ml", "ai", "artificial intelligence", "deep learning"},
	"data analysis":    {"data science", "analytics", "statistics"},
	"web development":  {"html", "css", "frontend", "backend"},
	"communication":    {"english", "presentation", "speaking"},
}

// qualificationKeywords mark an engineering/IT-adjacent education.
var qualificationKeywords = []string{"engineering", "btech", "computer", "it", "technology"}

// interestSectors is the fixed sector list eligible for the interest bonus.
var interestSectors = []string{"technology", "finance", "healthcare", "engineering", "management"}

// Matcher scores a user's skill set against a candidate's required skills.
// The zero value is not usable; construct with New.
type Matcher struct {
	synonyms map[string][]string
}

func New() *Matcher {
	return &Matcher{synonyms: synonyms}
}

// Score returns a 0-100 compatibility percentage between the user's skills
// and the required skills, plus additive profile bonuses. Results are
// deterministic for fixed inputs and rounded to one decimal.
func (m *Matcher) Score(userSkills, requiredSkills []string, prof *profile.Profile) float64 {
	user := normalize(userSkills)
	required := normalize(requiredSkills)

	if len(user) == 0 || len(required) == 0 {
		return 0
	}

	var total float64
	for _, req := range required {
		total += m.bestMatch(user, req)
	}

	percentage := total / float64(len(required)) * 100
	percentage += bonusPoints(prof)

	if percentage > 100 {
		percentage = 100
	}

	return math.Round(percentage*10) / 10
}

// bestMatch returns the strongest match weight for one required skill across
// all user skills.
func (m *Matcher) bestMatch(userSkills []string, required string) float64 {
	best := 0.0
	for _, user := range userSkills {
		if user == required {
			return 1.0
		}

		if sim := similarity(user, required); sim >= similarityThreshold {
			best = math.Max(best, sim)
		} else if strings.Contains(user, required) || strings.Contains(required, user) {
			best = math.Max(best, containmentWeight)
		}

		if m.isSynonym(user, required) {
			best = math.Max(best, synonymWeight)
		}
	}
	return best
}

func (m *Matcher) isSynonym(a, b string) bool {
	for canonical, variants := range m.synonyms {
		if a == canonical && contains(variants, b) {
			return true
		}
		if b == canonical && contains(variants, a) {
			return true
		}
	}
	return false
}

// similarity is a normalized edit-distance ratio in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

func bonusPoints(prof *profile.Profile) float64 {
	if prof == nil {
		return 0
	}

	var bonus float64

	qualification := strings.ToLower(prof.Qualification)
	for _, keyword := range qualificationKeywords {
		if strings.Contains(qualification, keyword) {
			bonus += qualificationBonus
			break
		}
	}

	interest := strings.ToLower(prof.AreaOfInterest)
	for _, sector := range interestSectors {
		if strings.Contains(interest, sector) {
			bonus += interestBonus
			break
		}
	}

	if prof.PriorInternship {
		bonus += internshipBonus
	}

	return bonus
}

func normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		out = append(out, skill)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
