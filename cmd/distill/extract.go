package main

import (
	"fmt"

	"github.com/fwojciec/distill"
)

// Run executes the extract command.
// URL sources go through the batch pipeline; file and stdin sources are
// extracted directly using --base as their source URL.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var urls []string
	var failed int

	for _, source := range c.Sources {
		if isURL(source) {
			urls = append(urls, source)
			continue
		}
		if err := c.extractLocal(deps, source); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %v\n", source, err)
			failed++
		}
	}

	if len(urls) > 0 {
		progress := func(e distill.ProgressEvent) {
			if e.Error != nil {
				fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %v\n", e.Completed, e.Total, e.URL, e.Error)
				return
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
			if c.toStdout() {
				c.print(deps, e.Article)
			}
		}

		result, err := deps.Pipeline.Batch(deps.Ctx, urls, c.Concurrency, progress)
		if err != nil {
			return err
		}
		failed += result.Failed
		if result.Duplicates > 0 {
			fmt.Fprintf(deps.Stderr, "skipped %d duplicate URLs\n", result.Duplicates)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(c.Sources))
	}
	return nil
}

func (c *ExtractCmd) extractLocal(deps *Dependencies, source string) error {
	raw, err := readSource(deps, source)
	if err != nil {
		return err
	}

	article, err := deps.Pipeline.FromHTML(raw, c.Base)
	if err != nil {
		return err
	}

	if deps.Writer != nil {
		if c.Base == "" {
			return distill.Errorf(distill.EINVALID, "--base is required to store local input")
		}
		if err := deps.Writer.CreateArticle(deps.Ctx, article); err != nil {
			return err
		}
	}

	if c.toStdout() {
		c.print(deps, article)
	}
	return nil
}

// toStdout reports whether articles are printed rather than only stored.
func (c *ExtractCmd) toStdout() bool {
	return c.Out == ""
}

func (c *ExtractCmd) print(deps *Dependencies, article *distill.Article) {
	if c.Format == "html" {
		fmt.Fprintln(deps.Stdout, article.ContentHTML)
		return
	}
	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", article.Title, article.Content)
}
