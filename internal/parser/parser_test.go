package parser_test

import (
	"testing"

	"github.com/sokinpui/feedup/internal/parser"
)

func TestExtractBlock(t *testing.T) {
	t.Run("uses the first fenced code block", func(t *testing.T) {
		content := "Here is the new section:\n\n" +
			"```ts\n" +
			"  // New\n" +
			"  { name: \"X\", url: \"https://x.example/feed\" },\n" +
			"```\n"
		got, err := parser.ExtractBlock(content)
		if err != nil {
			t.Fatalf("ExtractBlock failed: %v", err)
		}
		want := "  // New\n  { name: \"X\", url: \"https://x.example/feed\" },"
		if got != want {
			t.Errorf("ExtractBlock() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("ignores later blocks", func(t *testing.T) {
		content := "```\nfirst\n```\n\nsome prose\n\n```\nsecond\n```\n"
		got, err := parser.ExtractBlock(content)
		if err != nil {
			t.Fatalf("ExtractBlock failed: %v", err)
		}
		if got != "first" {
			t.Errorf("expected 'first', got %q", got)
		}
	})

	t.Run("returns unfenced content unchanged", func(t *testing.T) {
		content := "  // Raw\n  { name: \"Y\", url: \"https://y.example/rss\" },\n"
		got, err := parser.ExtractBlock(content)
		if err != nil {
			t.Fatalf("ExtractBlock failed: %v", err)
		}
		want := "  // Raw\n  { name: \"Y\", url: \"https://y.example/rss\" },"
		if got != want {
			t.Errorf("ExtractBlock() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})
}
