package engine

import (
	"strings"
	"testing"

	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/profile"
)

func TestBuildCandidatePromptDefaults(t *testing.T) {
	prompt := buildCandidatePrompt(&profile.Profile{}, 6)

	if !strings.Contains(prompt, "Skills: general") {
		t.Fatalf("expected default skills, got %q", prompt)
	}
	if !strings.Contains(prompt, "Interest: IT") {
		t.Fatalf("expected default interest, got %q", prompt)
	}
	if !strings.Contains(prompt, "Education: Graduate") {
		t.Fatalf("expected default education, got %q", prompt)
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Fatalf("expected format instruction, got %q", prompt)
	}
}

func TestBuildCandidatePromptNilProfile(t *testing.T) {
	prompt := buildCandidatePrompt(nil, 6)

	for _, marker := range []string{"Skills: general", "Interest: IT", "Education: Graduate"} {
		if !strings.Contains(prompt, marker) {
			t.Fatalf("expected %q for nil profile, got %q", marker, prompt)
		}
	}
}

func TestBuildCandidatePromptUsesProfile(t *testing.T) {
	prof := &profile.Profile{
		Skills:         []string{"Python", "SQL"},
		AreaOfInterest: "Finance",
		Qualification:  "B.Com",
	}

	prompt := buildCandidatePrompt(prof, 6)
	if !strings.Contains(prompt, "python, sql") {
		t.Fatalf("expected normalized skills in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Finance") || !strings.Contains(prompt, "B.Com") {
		t.Fatalf("expected profile details in prompt, got %q", prompt)
	}
}

func TestBuildChatPromptFirstInteraction(t *testing.T) {
	prompt := buildChatPrompt("am I eligible?", &profile.Profile{FullName: "Asha"}, nil)

	if !strings.Contains(prompt, "first interaction") {
		t.Fatalf("expected first-interaction marker, got %q", prompt)
	}
	if !strings.Contains(prompt, "Current question: am I eligible?") {
		t.Fatalf("expected the question embedded, got %q", prompt)
	}
	if !strings.Contains(prompt, "Asha") {
		t.Fatalf("expected personalization, got %q", prompt)
	}
}

func TestBuildChatPromptCoversTopics(t *testing.T) {
	turns := history.Turns{
		{UserMessage: "how do I apply?", BotReply: "Here is the process."},
		{UserMessage: "what about the stipend?", BotReply: "The stipend is ₹5,000."},
	}

	prompt := buildChatPrompt("anything else?", &profile.Profile{FullName: "Asha"}, turns)

	if !strings.Contains(prompt, "TOPICS COVERED: application_process, benefits") {
		t.Fatalf("expected covered topics in order, got %q", prompt)
	}
	if !strings.Contains(prompt, "how do I apply?") {
		t.Fatalf("expected history replayed, got %q", prompt)
	}
}

func TestBuildChatPromptBoundsHistory(t *testing.T) {
	var turns history.Turns
	for _, q := range []string{"q1", "q2", "q3", "q4", "q5"} {
		turns = turns.Append(history.Turn{UserMessage: q, BotReply: "a"})
	}

	prompt := buildChatPrompt("next", &profile.Profile{}, turns)

	if strings.Contains(prompt, "q1") || strings.Contains(prompt, "q2") {
		t.Fatalf("expected only the most recent turns replayed, got %q", prompt)
	}
	for _, q := range []string{"q3", "q4", "q5"} {
		if !strings.Contains(prompt, q) {
			t.Fatalf("expected %s in prompt, got %q", q, prompt)
		}
	}
}

func TestBuildChatPromptTruncatesLongReplies(t *testing.T) {
	long := strings.Repeat("x", 400)
	turns := history.Turns{{UserMessage: "q", BotReply: long}}

	prompt := buildChatPrompt("next", &profile.Profile{}, turns)
	if strings.Contains(prompt, long) {
		t.Fatalf("expected the replayed reply to be truncated")
	}
	if !strings.Contains(prompt, strings.Repeat("x", replyPreviewLen)+"...") {
		t.Fatalf("expected a truncated preview with ellipsis")
	}
}
