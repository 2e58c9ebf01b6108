package profile

import (
	"strings"
)

// Profile is the read-only view of a portal user consumed by the engine.
// The surrounding portal owns the record; the engine never mutates or
// persists it.
type Profile struct {
	FullName         string   `json:"full_name" mapstructure:"full_name"`
	Email            string   `json:"email" mapstructure:"email"`
	Age              int      `json:"age,omitempty" mapstructure:"age"`
	EducationLevel   string   `json:"education_level,omitempty" mapstructure:"education_level"`
	Qualification    string   `json:"qualification,omitempty" mapstructure:"qualification"`
	AreaOfInterest   string   `json:"area_of_interest,omitempty" mapstructure:"area_of_interest"`
	ExperienceLevel  string   `json:"experience_level,omitempty" mapstructure:"experience_level"`
	Skills           []string `json:"skills,omitempty" mapstructure:"skills"`
	PreferredSectors []string `json:"preferred_sectors,omitempty" mapstructure:"preferred_sectors"`
	PriorInternship  bool     `json:"prior_internship,omitempty" mapstructure:"prior_internship"`
	ProfileCompleted bool     `json:"profile_completed,omitempty" mapstructure:"profile_completed"`
}

// NormalizedSkills returns the profile's skills lowercased, trimmed and with
// empty entries dropped. Order is preserved.
func (p *Profile) NormalizedSkills() []string {
	if p == nil {
		return nil
	}
	skills := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

// DisplayName picks a presentable name for the user: the full name when set,
// otherwise the local part of the email address.
func (p *Profile) DisplayName() string {
	if p == nil {
		return "there"
	}
	return DisplayName(p.FullName, p.Email)
}

// DisplayName resolves a presentable name from a full name or an email address.
func DisplayName(fullName, email string) string {
	fullName = strings.TrimSpace(fullName)
	if fullName != "" && !strings.EqualFold(fullName, "user") {
		return fullName
	}

	local, _, found := strings.Cut(email, "@")
	if found && local != "" {
		return strings.ToUpper(local[:1]) + local[1:]
	}

	return "there"
}

// Initials derives up to two uppercase initials from a full name.
func Initials(fullName string) string {
	names := strings.Fields(strings.TrimSpace(fullName))
	if len(names) == 0 {
		return "U"
	}
	if len(names) == 1 {
		return strings.ToUpper(names[0][:1])
	}
	return strings.ToUpper(names[0][:1] + names[len(names)-1][:1])
}
