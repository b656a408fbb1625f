package feeds

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclRegistryFile represents the top-level structure of a registry file
// for decoding.
type hclRegistryFile struct {
	Categories []*hclCategory `hcl:"category,block"`
}

type hclCategory struct {
	Label string     `hcl:"label,label"`
	Feeds []*hclFeed `hcl:"feed,block"`
}

type hclFeed struct {
	Name string `hcl:"name"`
	URL  string `hcl:"url"`
}

// Load parses and validates an HCL feed registry file of the form:
//
//	category "Cloud & Infrastructure Engineering" {
//	  feed {
//	    name = "Cloudflare Blog"
//	    url  = "https://blog.cloudflare.com/rss/"
//	  }
//	}
func Load(path string) (*Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", path, diags)
	}

	var parsed hclRegistryFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode registry file %s: %w", path, diags)
	}

	reg := &Registry{Categories: make([]Category, 0, len(parsed.Categories))}
	for _, c := range parsed.Categories {
		cat := Category{Label: c.Label, Feeds: make([]Feed, 0, len(c.Feeds))}
		for _, f := range c.Feeds {
			cat.Feeds = append(cat.Feeds, Feed{Name: f.Name, URL: f.URL})
		}
		reg.Categories = append(reg.Categories, cat)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry file %s: %w", path, err)
	}
	return reg, nil
}
