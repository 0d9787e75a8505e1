package main

import (
	"fmt"

	"github.com/SirDavvie/wikrawler"
)

// Run executes the drop command.
func (c *DropCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wikrawler.Errorf(wikrawler.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Sink.Delete(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Deleted sink")
	return nil
}
