package main

import (
	"fmt"

	"github.com/fwojciec/distill"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return distill.Errorf(distill.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if distill.ErrorCode(err) == distill.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'distill list' to see saved articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %s\n", c.ID)
	return nil
}
