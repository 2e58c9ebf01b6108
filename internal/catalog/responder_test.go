package catalog

import (
	"strings"
	"testing"
)

func TestRespondFirstMatchWins(t *testing.T) {
	// "hi" matches greeting before "stipend" can reach the benefits category.
	reply := Respond("hi, what is the stipend?", ReplyContext{Name: "Asha"})
	if !strings.Contains(reply, "Hello Asha") {
		t.Fatalf("expected greeting to win, got %q", reply)
	}
}

func TestRespondCategories(t *testing.T) {
	cases := []struct {
		name    string
		message string
		marker  string
	}{
		{"application", "How do I apply?", "Application process"},
		{"eligibility", "am i ELIGIBLE for this scheme", "Eligibility checklist"},
		{"benefits", "tell me about the stipend", "Monthly stipend"},
		{"documents", "what documents are needed", "Required documents"},
		{"support", "I need help with the portal", "Support channels"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply := Respond(tc.message, ReplyContext{Name: "Asha"})
			if !strings.Contains(reply, tc.marker) {
				t.Fatalf("expected %q in reply, got %q", tc.marker, reply)
			}
			if !strings.Contains(reply, "Asha") {
				t.Fatalf("expected personalized reply, got %q", reply)
			}
		})
	}
}

func TestRespondGenericFallback(t *testing.T) {
	reply := Respond("what is the weather like", ReplyContext{Name: "Asha"})
	if !strings.Contains(reply, "I can help you with") {
		t.Fatalf("expected generic help reply, got %q", reply)
	}
}

func TestRespondDefaultsName(t *testing.T) {
	reply := Respond("random question", ReplyContext{})
	if !strings.Contains(reply, "there") {
		t.Fatalf("expected default name in reply, got %q", reply)
	}
}

func TestRespondGreetingVariants(t *testing.T) {
	complete := Respond("hello", ReplyContext{Name: "Asha", ProfileKnown: true, ProfileCompleted: true})
	if !strings.Contains(complete, "profile is complete") {
		t.Fatalf("expected complete-profile greeting, got %q", complete)
	}

	incomplete := Respond("hello", ReplyContext{Name: "Asha", ProfileKnown: true})
	if !strings.Contains(incomplete, "profile needs completion") {
		t.Fatalf("expected incomplete-profile greeting, got %q", incomplete)
	}

	anonymous := Respond("hello", ReplyContext{Name: "Asha"})
	if !strings.Contains(anonymous, "Ready to explore") {
		t.Fatalf("expected anonymous greeting, got %q", anonymous)
	}
}

func TestPoolComposition(t *testing.T) {
	pool := Pool()

	if len(pool) != 15 {
		t.Fatalf("expected 15 catalog entries, got %d", len(pool))
	}

	government := 0
	for _, c := range pool {
		if c.Company == "" || c.Title == "" || len(c.Skills) == 0 {
			t.Fatalf("incomplete catalog entry: %+v", c)
		}
		if c.IsGovernment() {
			government++
		}
	}
	if government != 7 {
		t.Fatalf("expected 7 government entries, got %d", government)
	}
}

func TestPoolReturnsCopies(t *testing.T) {
	first := Pool()
	first[0].MatchScore = 99
	first[0].Skills[0] = "mutated"

	second := Pool()
	if second[0].MatchScore != 0 {
		t.Fatalf("pool leaked score mutation: %v", second[0].MatchScore)
	}
	if second[0].Skills[0] == "mutated" {
		t.Fatalf("pool leaked skills mutation")
	}
}
