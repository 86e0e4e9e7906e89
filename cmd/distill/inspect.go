package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/distill"
	dhtml "github.com/fwojciec/distill/html"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	raw, err := readSource(deps, c.Source)
	if err != nil {
		return err
	}

	baseURL := c.Base
	if baseURL == "" && isURL(c.Source) {
		baseURL = c.Source
	}
	var base *url.URL
	if baseURL != "" {
		base, err = url.Parse(baseURL)
		if err != nil {
			return distill.Errorf(distill.EINVALID, "invalid base URL: %v", err)
		}
	}

	doc, err := dhtml.ParseString(raw)
	if err != nil {
		return err
	}

	m := dhtml.Measure(doc)
	m.ImagesNormalized, m.LinksResolved = dhtml.Normalize(doc, base)

	fmt.Fprintf(deps.Stdout, "title:       %s\n", m.Title)
	fmt.Fprintf(deps.Stdout, "text length: %d\n", m.TextLength)
	fmt.Fprintf(deps.Stdout, "paragraphs:  %d\n", m.Paragraphs)
	fmt.Fprintf(deps.Stdout, "images:      %d (%d with src)\n", m.Images, m.ImagesNormalized)
	fmt.Fprintf(deps.Stdout, "links:       %d resolvable\n", m.LinksResolved)

	if deps.Metadata != nil {
		if meta, err := deps.Metadata.ReadMetadata(raw); err == nil {
			printIfSet(deps, "site", meta.SiteName)
			printIfSet(deps, "description", meta.Description)
			printIfSet(deps, "canonical", meta.Canonical)
			printIfSet(deps, "image", meta.Image)
		}
	}

	return nil
}

func printIfSet(deps *Dependencies, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(deps.Stdout, "%-12s %s\n", label+":", value)
}
