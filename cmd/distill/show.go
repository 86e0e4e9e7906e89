package main

import (
	"fmt"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if distill.ErrorCode(err) == distill.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'distill list' to see saved articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		}
		return err
	}

	if c.HTML {
		fmt.Fprintln(deps.Stdout, article.ContentHTML)
		return nil
	}

	fmt.Fprintln(deps.Stdout, fs.FormatArticle(article, article.Content))
	return nil
}
