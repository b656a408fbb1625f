// Package feeds models the feed list that replaces the located region,
// either as the built-in block or loaded from an HCL registry file.
package feeds

import (
	"fmt"
	"strings"
)

// Feed is one named feed entry in the target file's list.
type Feed struct {
	Name string
	URL  string
}

// Category is a labeled group of feeds. The label becomes a comment line
// above the group in the rendered block.
type Category struct {
	Label string
	Feeds []Feed
}

// Registry is the structured form of the replacement block.
type Registry struct {
	Categories []Category
}

// renderWidth is the column limit before an entry wraps to the multi-line
// form, matching the target file's prettier settings.
const renderWidth = 80

// Render serializes the registry into the target file's literal syntax.
// The result carries no trailing newline so it can replace the located
// region directly.
func (r *Registry) Render() string {
	var lines []string
	for _, c := range r.Categories {
		lines = append(lines, "  // "+c.Label)
		for _, f := range c.Feeds {
			one := fmt.Sprintf("  { name: %q, url: %q },", f.Name, f.URL)
			if len(one) <= renderWidth {
				lines = append(lines, one)
				continue
			}
			lines = append(lines,
				"  {",
				fmt.Sprintf("    name: %q,", f.Name),
				fmt.Sprintf("    url: %q,", f.URL),
				"  },")
		}
	}
	return strings.Join(lines, "\n")
}

// Validate checks the registry is complete enough to render.
func (r *Registry) Validate() error {
	if len(r.Categories) == 0 {
		return fmt.Errorf("registry has no categories")
	}
	seen := make(map[string]string)
	for _, c := range r.Categories {
		if strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("registry contains a category with an empty label")
		}
		for _, f := range c.Feeds {
			if strings.TrimSpace(f.Name) == "" {
				return fmt.Errorf("category %q contains a feed with an empty name", c.Label)
			}
			if strings.TrimSpace(f.URL) == "" {
				return fmt.Errorf("feed %q has no url", f.Name)
			}
			if prev, ok := seen[f.URL]; ok {
				return fmt.Errorf("duplicate feed url %s (%q and %q)", f.URL, prev, f.Name)
			}
			seen[f.URL] = f.Name
		}
	}
	return nil
}

// DefaultBlock is the replacement written when no registry file or piped
// block is given. It is kept verbatim, including the missing trailing
// newline, so a bare run matches the tool's historical output exactly.
const DefaultBlock = `  // Cloud & Infrastructure Engineering
  {
    name: "Cloudflare Blog",
    url: "https://blog.cloudflare.com/rss/",
  },
  // Human Side of Tech & Leadership
  {
    name: "The Engineering Manager",
    url: "https://theengineeringmanager.com/feed/",
  },
  { name: "Rands in Repose", url: "https://randsinrepose.com/feed/" },
  {
    name: "Irrational Exuberance (Will Larson)",
    url: "https://lethain.com/feeds.xml",
  },
  { name: "LeadDev", url: "https://leaddev.com/feed" },
  { name: "StaffEng", url: "https://staffeng.com/rss" },
  {
    name: "Charity Majors (CTO Craft)",
    url: "https://charity.wtf/feed/",
  },
  // Substack & Independent - Architecture & Leadership
  {
    name: "The Pragmatic Engineer",
    url: "https://newsletter.pragmaticengineer.com/feed",
  },
  { name: "ByteByteGo System Design", url: "https://blog.bytebytego.com/feed" },
  { name: "Refactoring (Luca Rossi)", url: "https://refactoring.fm/feed" },
  {
    name: "Tidy First? (Kent Beck)",
    url: "https://tidyfirst.substack.com/feed",
  },
  {
    name: "The Beautiful Mess (John Cutler)",
    url: "https://cutlefish.substack.com/feed",
  },
  { name: "Martin Fowler", url: "https://martinfowler.com/feed.atom" },
  { name: "LangChain Blog", url: "https://blog.langchain.dev/rss/" },
  // System Design & Architecture
  {
    name: "High Scalability",
    url: "https://highscalability.com/feed/",
  },
  {
    name: "InfoQ",
    url: "https://feed.infoq.com/",
  },
  {
    name: "The New Stack",
    url: "https://thenewstack.io/feed/",
  },
  {
    name: "Architecture Notes",
    url: "https://architecturenotes.co/rss/",
  },
  // AI Agents, LLMs & Research
  { name: "Google Research", url: "https://research.google/blog/rss" },
  { name: "Hugging Face", url: "https://huggingface.co/blog/feed.xml" },
  {
    name: "BAIR (Berkeley AI)",
    url: "https://bair.berkeley.edu/blog/feed.xml",
  },
  {
    name: "Lil'Log (Lilian Weng)",
    url: "https://lilianweng.github.io/index.xml",
  },
  {
    name: "Anthropic Research",
    url: "https://www.anthropic.com/research/rss.xml",
  },
  {
    name: "DeepMind Blog",
    url: "https://deepmind.google/blog/rss.xml",
  },
  {
    name: "Meta AI Blog",
    url: "https://ai.meta.com/blog/rss/",
  },
  {
    name: "AI Snake Oil",
    url: "https://www.aisnakeoil.com/feed",
  },
  {
    name: "Simon Willison's Weblog",
    url: "https://simonwillison.net/atom/everything/",
  },`
