package catalog

import (
	"fmt"
	"strings"
)

// ReplyContext carries the per-user details available for personalizing a
// fallback reply.
type ReplyContext struct {
	Name             string
	ProfileKnown     bool
	ProfileCompleted bool
}

// category pairs a keyword predicate with a reply builder. The responder
// evaluates categories in order and the first match wins, so adding a new
// category is an insertion, not an edit to existing logic.
type category struct {
	name     string
	keywords []string
	build    func(ctx ReplyContext) string
}

var categories = []category{
	{
		name:     "greeting",
		keywords: []string{"hi", "hello", "hey", "namaste", "good morning", "good afternoon", "good evening"},
		build:    buildGreeting,
	},
	{
		name:     "application-process",
		keywords: []string{"apply", "application", "how to apply", "process", "steps"},
		build: func(ctx ReplyContext) string {
			return fmt.Sprintf("Application process for %s:\n\n"+
				"1. Verify eligibility - age 21-24, Indian citizen, family income under ₹8 lakhs\n"+
				"2. Register - create an account on the official portal\n"+
				"3. Profile setup - complete your detailed profile\n"+
				"4. Document upload - Aadhaar, certificates, income proof\n"+
				"5. Browse and apply - find matching internships\n"+
				"6. Track status - monitor your applications\n\n"+
				"Tip: complete your profile first for better matches.", ctx.Name)
		},
	},
	{
		name:     "eligibility",
		keywords: []string{"eligible", "eligibility", "criteria", "qualify", "requirements"},
		build: func(ctx ReplyContext) string {
			return fmt.Sprintf("Eligibility checklist for %s:\n\n"+
				"- Age: 21-24 years\n"+
				"- Indian citizenship with valid documents\n"+
				"- Graduate or diploma holder in any field\n"+
				"- Not in full-time education or employment during the internship\n"+
				"- Family income below ₹8 lakhs annually\n"+
				"- No immediate family member in government service\n\n"+
				"Do you meet these criteria? I can help you with the next steps.", ctx.Name)
		},
	},
	{
		name:     "benefits",
		keywords: []string{"stipend", "benefit", "salary", "money", "payment", "allowance", "grant"},
		build: func(ctx ReplyContext) string {
			return fmt.Sprintf("Benefits awaiting %s:\n\n"+
				"- Monthly stipend: ₹5,000 (₹4,500 central government + ₹500 host organization)\n"+
				"- One-time grant: ₹6,000 for learning materials\n"+
				"- Health and accident insurance coverage\n"+
				"- Official Government of India completion certificate\n"+
				"- Industry mentorship and skill development workshops\n\n"+
				"Total value: over ₹66,000 per year.", ctx.Name)
		},
	},
	{
		name:     "documents",
		keywords: []string{"document", "documents", "papers", "certificates", "upload"},
		build: func(ctx ReplyContext) string {
			return fmt.Sprintf("Required documents for %s:\n\n"+
				"- Identity: Aadhaar card (mandatory), PAN card if available\n"+
				"- Educational: 10th and 12th certificates, graduation/diploma certificate, mark sheets\n"+
				"- Income proof: family income certificate\n"+
				"- Banking: account details and a cancelled cheque\n"+
				"- Passport size photograph\n\n"+
				"Tip: keep all documents in PDF format, max 2MB each.", ctx.Name)
		},
	},
	{
		name:     "support",
		keywords: []string{"help", "support", "contact", "phone", "email", "assistance"},
		build: func(ctx ReplyContext) string {
			return fmt.Sprintf("Support channels for %s:\n\n"+
				"- Email: contact-pminternship@gov.in (response within 24-48 hours)\n"+
				"- Helpline: 011-12345678, Monday-Friday 10 AM - 6 PM\n"+
				"- Portal help: FAQ section and step-by-step guides, available 24/7\n\n"+
				"Need immediate help? Ask me right here.", ctx.Name)
		},
	},
}

// Respond classifies the message by keyword category, first match wins, and
// returns a templated reply personalized with the user's name and profile
// status. Unmatched messages fall through to a generic help reply.
func Respond(message string, ctx ReplyContext) string {
	if strings.TrimSpace(ctx.Name) == "" {
		ctx.Name = "there"
	}

	lower := strings.ToLower(message)
	for _, cat := range categories {
		if matchesAny(lower, cat.keywords) {
			return cat.build(ctx)
		}
	}

	return buildGeneric(ctx)
}

func matchesAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func buildGreeting(ctx ReplyContext) string {
	switch {
	case ctx.ProfileKnown && ctx.ProfileCompleted:
		return fmt.Sprintf("Hello %s, great to see you back! Since your profile is complete, "+
			"I can provide targeted internship guidance. What would you like to explore?", ctx.Name)
	case ctx.ProfileKnown:
		return fmt.Sprintf("Hello %s! I'm PRIA, your PM Internship AI Assistant. I notice your "+
			"profile needs completion - finishing it will unlock personalized internship matches.", ctx.Name)
	default:
		return fmt.Sprintf("Hello %s! I'm PRIA, your personal PM Internship AI Assistant. "+
			"Ready to explore opportunities worth over ₹66,000 per year?", ctx.Name)
	}
}

func buildGeneric(ctx ReplyContext) string {
	return fmt.Sprintf("Hi %s, I'm PRIA, your PM Internship Assistant.\n\n"+
		"I can help you with:\n"+
		"- Eligibility criteria and requirements\n"+
		"- The application process and steps\n"+
		"- Document preparation\n"+
		"- Stipend and financial benefits\n"+
		"- Support channels\n\n"+
		"Just ask, for example: 'Am I eligible?', 'How to apply?' or 'What documents are needed?'", ctx.Name)
}
