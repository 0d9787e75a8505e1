package main

import (
	"fmt"

	"github.com/SirDavvie/wikrawler/markdown"
)

// Run executes the dump command.
func (c *DumpCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.ReadEntries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	if c.Format == "markdown" {
		return markdown.WriteEntries(deps.Stdout, entries)
	}

	for _, e := range entries {
		fmt.Fprintln(deps.Stdout, e.String())
	}
	return nil
}
