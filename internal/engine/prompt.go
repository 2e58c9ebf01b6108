package engine

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/logger"
	"github.com/rgarhwal/intern-advisor/internal/profile"
)

//go:embed knowledge.md
var knowledgeContext string

const (
	// historyTurnsInPrompt bounds how much of the session history is replayed
	// to the model; replyPreviewLen bounds each replayed reply.
	historyTurnsInPrompt = 3
	replyPreviewLen      = 150
)

// topics classify prior user messages so the prompt can tell the model which
// ground is already covered. Ordered so the generated prompt is reproducible.
var topics = []struct {
	name     string
	keywords []string
}{
	{"application_process", []string{"apply", "application", "process"}},
	{"eligibility", []string{"eligible", "eligibility", "criteria"}},
	{"documents", []string{"document", "documents", "papers"}},
	{"benefits", []string{"stipend", "benefit", "salary", "money"}},
	{"support", []string{"help", "support", "contact"}},
}

// buildCandidatePrompt asks for a fixed-size JSON array of internship
// candidates tailored to the profile. The prompt is deliberately short; the
// response size is bounded separately via the token cap.
func buildCandidatePrompt(prof *profile.Profile, count int) string {
	// A nil profile is valid input; ranking must still produce a prompt.
	skills := strings.Join(prof.NormalizedSkills(), ", ")
	if skills == "" {
		skills = "general"
	}
	interest := "IT"
	qualification := "Graduate"
	if prof != nil {
		if v := strings.TrimSpace(prof.AreaOfInterest); v != "" {
			interest = v
		}
		if v := strings.TrimSpace(prof.Qualification); v != "" {
			qualification = v
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d internship recommendations for:\n", count)
	fmt.Fprintf(&b, "- Skills: %s\n", skills)
	fmt.Fprintf(&b, "- Interest: %s\n", interest)
	fmt.Fprintf(&b, "- Education: %s\n\n", qualification)
	b.WriteString("IMPORTANT: Include government internships (ISRO, DRDO, NITI Aayog, etc).\n\n")
	b.WriteString(`Respond with ONLY a JSON array in this format: ` +
		`[{"company":"Name","title":"Position","type":"government|private-based",` +
		`"sector":"Sector","skills":["skill1","skill2"],"duration":"X Months",` +
		`"location":"City","stipend":"₹X/month","description":"Brief desc"}]`)

	return b.String()
}

// buildChatPrompt combines the scheme knowledge base, a profile-derived
// context block and the recent conversation into one prompt.
func buildChatPrompt(message string, prof *profile.Profile, turns history.Turns) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(knowledgeContext))
	b.WriteString("\n\n")
	b.WriteString(profileContext(prof))
	b.WriteString("\n\n")
	b.WriteString(conversationContext(turns))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Current question: %s\n\n", message)
	fmt.Fprintf(&b, "Start with a warm, personalized greeting for %s. ", prof.DisplayName())
	b.WriteString("Keep the response clear, encouraging and under 300 words. " +
		"Use natural line breaks, never literal \\n characters.")

	return b.String()
}

// profileContext describes the user so the model can tailor guidance.
func profileContext(prof *profile.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "USER PROFILE:\n- Name: %s (address them personally)", prof.DisplayName())

	if prof == nil {
		return b.String()
	}

	if prof.Age > 0 {
		fmt.Fprintf(&b, "\n- Age: %d years", prof.Age)
		if prof.Age < 22 {
			b.WriteString(" (younger candidate - encourage and guide)")
		} else if prof.Age > 23 {
			b.WriteString(" (mature candidate - focus on career transition)")
		}
	}

	if education := strings.TrimSpace(prof.EducationLevel); education != "" {
		fmt.Fprintf(&b, "\n- Education: %s", education)
		lower := strings.ToLower(education)
		if strings.Contains(lower, "graduate") {
			b.WriteString(" (experienced learner - can handle complex topics)")
		} else if strings.Contains(lower, "diploma") {
			b.WriteString(" (practical learner - focus on hands-on opportunities)")
		}
	}

	if skills := prof.NormalizedSkills(); len(skills) > 0 {
		fmt.Fprintf(&b, "\n- Skills: %s", strings.Join(skills, ", "))
		if len(skills) > 3 {
			b.WriteString(" (diverse skill set - highlight varied opportunities)")
		}
	}

	if len(prof.PreferredSectors) > 0 {
		fmt.Fprintf(&b, "\n- Preferred sectors: %s (tailor suggestions to these areas)",
			strings.Join(prof.PreferredSectors, ", "))
	}

	if prof.ProfileCompleted {
		b.WriteString("\n- Profile status: complete (full profile enables precise recommendations)")
	} else {
		b.WriteString("\n- Profile status: incomplete (encourage profile completion for better matching)")
	}

	return b.String()
}

// conversationContext replays the recent turns with bounded reply previews
// and notes topics already covered so the model builds on them instead of
// repeating itself.
func conversationContext(turns history.Turns) string {
	recent := turns.Last(historyTurnsInPrompt)
	if len(recent) == 0 {
		return "CONVERSATION CONTEXT: first interaction - provide a comprehensive introduction."
	}

	var b strings.Builder
	b.WriteString("CONVERSATION HISTORY:\n")

	covered := make([]string, 0, len(topics))
	seen := make(map[string]bool)
	for i, turn := range recent {
		fmt.Fprintf(&b, "%d. User asked: %s\n   Assistant responded: %s\n",
			i+1, turn.UserMessage, logger.TruncateForLog(turn.BotReply, replyPreviewLen))

		lower := strings.ToLower(turn.UserMessage)
		for _, topic := range topics {
			if seen[topic.name] {
				continue
			}
			for _, keyword := range topic.keywords {
				if strings.Contains(lower, keyword) {
					covered = append(covered, topic.name)
					seen[topic.name] = true
					break
				}
			}
		}
	}

	if len(covered) > 0 {
		fmt.Fprintf(&b, "\nTOPICS COVERED: %s", strings.Join(covered, ", "))
		b.WriteString("\nGUIDANCE: build upon previous discussion, avoid repetition, provide next logical steps")
	}

	return b.String()
}
