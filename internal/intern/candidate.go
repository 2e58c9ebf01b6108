package intern

import (
	"strings"
)

// Category labels the two kinds of opportunities the portal offers.
type Category string

const (
	CategoryGovernment Category = "government"
	CategoryPrivate    Category = "private-based"
)

// Candidate is one internship opportunity being ranked against a user
// profile. Candidates are transient: they are built per request from either
// the AI response or the fallback catalog and are never stored.
type Candidate struct {
	Company     string   `json:"company" mapstructure:"company"`
	Title       string   `json:"title" mapstructure:"title"`
	Category    Category `json:"type" mapstructure:"type"`
	Sector      string   `json:"sector,omitempty" mapstructure:"sector"`
	Skills      []string `json:"skills" mapstructure:"skills"`
	Duration    string   `json:"duration,omitempty" mapstructure:"duration"`
	Location    string   `json:"location,omitempty" mapstructure:"location"`
	Stipend     string   `json:"stipend,omitempty" mapstructure:"stipend"`
	Description string   `json:"description,omitempty" mapstructure:"description"`

	// MatchScore is assigned by the ranking pipeline, 0-100. It is not part
	// of the AI response schema and never persisted upstream.
	MatchScore float64 `json:"match_score" mapstructure:"-"`
}

// IsGovernment reports whether the candidate belongs to the government category.
func (c *Candidate) IsGovernment() bool {
	return c.Category == CategoryGovernment
}

// RequiredSkills returns the candidate's skill requirements lowercased and
// trimmed, dropping empty entries.
func (c *Candidate) RequiredSkills() []string {
	skills := make([]string, 0, len(c.Skills))
	for _, skill := range c.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

// Clone returns a copy safe for per-request mutation of MatchScore.
func (c *Candidate) Clone() *Candidate {
	clone := *c
	clone.Skills = append([]string(nil), c.Skills...)
	return &clone
}
