package main

import (
	"fmt"

	"github.com/SirDavvie/wikrawler"
)

// Run executes the words command.
func (c *WordsCmd) Run(deps *Dependencies) error {
	page, err := deps.Source.FetchRelative(deps.Ctx, c.Locator)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	links, ok := deps.Enumerator.ListWordEntries(page)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no word list on %s\n", c.Locator)
		return wikrawler.Errorf(wikrawler.ENOTFOUND, "no word list on %s", c.Locator)
	}

	for _, link := range links {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", link.Word, link.URL)
	}
	return nil
}
