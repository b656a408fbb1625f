package feeds_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sokinpui/feedup/internal/feeds"
)

func TestDefaultBlock(t *testing.T) {
	if !strings.HasPrefix(feeds.DefaultBlock, "  // Cloud & Infrastructure Engineering\n") {
		t.Errorf("block does not start with the first category comment")
	}
	if !strings.HasSuffix(feeds.DefaultBlock, "},") {
		t.Errorf("block does not end with a closing delimiter")
	}
	if strings.HasSuffix(feeds.DefaultBlock, "\n") {
		t.Errorf("block must not carry a trailing newline")
	}
	if !strings.Contains(feeds.DefaultBlock, `url: "https://lilianweng.github.io/index.xml",`) {
		t.Errorf("block is missing the entry the end marker anchors on")
	}
}

func TestRender(t *testing.T) {
	reg := &feeds.Registry{Categories: []feeds.Category{{
		Label: "Engineering",
		Feeds: []feeds.Feed{
			{Name: "Rands in Repose", URL: "https://randsinrepose.com/feed/"},
			{Name: "A Very Long Feed Name That Goes On And On", URL: "https://example.com/a/particularly/long/feed/path.xml"},
		},
	}}}

	want := "  // Engineering\n" +
		"  { name: \"Rands in Repose\", url: \"https://randsinrepose.com/feed/\" },\n" +
		"  {\n" +
		"    name: \"A Very Long Feed Name That Goes On And On\",\n" +
		"    url: \"https://example.com/a/particularly/long/feed/path.xml\",\n" +
		"  },"
	if got := reg.Render(); got != want {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *feeds.Registry {
		return &feeds.Registry{Categories: []feeds.Category{{
			Label: "AI",
			Feeds: []feeds.Feed{{Name: "Hugging Face", URL: "https://huggingface.co/blog/feed.xml"}},
		}}}
	}

	t.Run("accepts a complete registry", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("rejects an empty registry", func(t *testing.T) {
		reg := &feeds.Registry{}
		if err := reg.Validate(); err == nil {
			t.Errorf("expected an error")
		}
	})

	t.Run("rejects an empty label", func(t *testing.T) {
		reg := valid()
		reg.Categories[0].Label = " "
		if err := reg.Validate(); err == nil {
			t.Errorf("expected an error")
		}
	})

	t.Run("rejects a feed without a name", func(t *testing.T) {
		reg := valid()
		reg.Categories[0].Feeds[0].Name = ""
		if err := reg.Validate(); err == nil {
			t.Errorf("expected an error")
		}
	})

	t.Run("rejects a feed without a url", func(t *testing.T) {
		reg := valid()
		reg.Categories[0].Feeds[0].URL = ""
		if err := reg.Validate(); err == nil {
			t.Errorf("expected an error")
		}
	})

	t.Run("rejects duplicate urls", func(t *testing.T) {
		reg := valid()
		reg.Categories[0].Feeds = append(reg.Categories[0].Feeds,
			feeds.Feed{Name: "Mirror", URL: "https://huggingface.co/blog/feed.xml"})
		if err := reg.Validate(); err == nil {
			t.Errorf("expected an error")
		}
	})
}

func TestLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "feedup-test-")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Run("loads a registry file", func(t *testing.T) {
		path := filepath.Join(tempDir, "feeds.hcl")
		content := `
category "Cloud & Infrastructure Engineering" {
  feed {
    name = "Cloudflare Blog"
    url  = "https://blog.cloudflare.com/rss/"
  }
  feed {
    name = "The New Stack"
    url  = "https://thenewstack.io/feed/"
  }
}

category "AI Agents, LLMs & Research" {
  feed {
    name = "Google Research"
    url  = "https://research.google/blog/rss"
  }
}
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write registry file: %v", err)
		}

		reg, err := feeds.Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(reg.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(reg.Categories))
		}
		if reg.Categories[0].Label != "Cloud & Infrastructure Engineering" {
			t.Errorf("unexpected label %q", reg.Categories[0].Label)
		}
		if len(reg.Categories[0].Feeds) != 2 {
			t.Fatalf("expected 2 feeds, got %d", len(reg.Categories[0].Feeds))
		}
		if reg.Categories[0].Feeds[0].URL != "https://blog.cloudflare.com/rss/" {
			t.Errorf("unexpected url %q", reg.Categories[0].Feeds[0].URL)
		}
	})

	t.Run("rejects a feed missing its url", func(t *testing.T) {
		path := filepath.Join(tempDir, "missing-url.hcl")
		content := `
category "Broken" {
  feed {
    name = "No URL"
  }
}
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write registry file: %v", err)
		}
		if _, err := feeds.Load(path); err == nil {
			t.Errorf("expected an error")
		}
	})

	t.Run("rejects malformed syntax", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.hcl")
		if err := os.WriteFile(path, []byte(`category "x" {`), 0644); err != nil {
			t.Fatalf("Failed to write registry file: %v", err)
		}
		if _, err := feeds.Load(path); err == nil {
			t.Errorf("expected an error")
		}
	})
}
