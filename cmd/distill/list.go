package main

import (
	"fmt"

	"github.com/fwojciec/distill"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := distill.ArticleFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'distill extract --save' to store some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", a.ID, a.ExtractedAt.Format("2006-01-02"), a.Title, a.SourceURL)
	}

	return nil
}
