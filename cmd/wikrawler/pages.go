package main

import "fmt"

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	start, err := deps.Source.FetchStart(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	for _, locator := range deps.Enumerator.ListIndexPages(start, deps.Source.StartLocator()) {
		fmt.Fprintln(deps.Stdout, locator)
	}
	return nil
}
