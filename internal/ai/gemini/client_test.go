package gemini

import (
	"context"
	"testing"
)

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), "   ", ""); err == nil {
		t.Fatalf("expected error for blank api key")
	}
}

func TestGenerateContentUninitialized(t *testing.T) {
	var g *Generator
	if _, err := g.GenerateContent(context.Background(), "hello", nil); err == nil {
		t.Fatalf("expected error for nil generator")
	}

	empty := &Generator{}
	if _, err := empty.GenerateContent(context.Background(), "hello", nil); err == nil {
		t.Fatalf("expected error for generator without client")
	}
}

func TestGenerateContentRejectsEmptyPrompt(t *testing.T) {
	g := &Generator{modelName: defaultModel}
	if _, err := g.GenerateContent(context.Background(), "   ", nil); err == nil {
		t.Fatalf("expected error for empty prompt")
	}
}

func TestModel(t *testing.T) {
	var nilGen *Generator
	if got := nilGen.Model(); got != "" {
		t.Fatalf("expected empty model for nil generator, got %q", got)
	}

	g := &Generator{modelName: "gemini-1.5-pro"}
	if got := g.Model(); got != "gemini-1.5-pro" {
		t.Fatalf("unexpected model name: %q", got)
	}
}
