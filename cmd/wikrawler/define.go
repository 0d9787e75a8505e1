package main

import (
	"fmt"

	"github.com/SirDavvie/wikrawler"
)

// Run executes the define command.
func (c *DefineCmd) Run(deps *Dependencies) error {
	defs, err := deps.Extractor.ExtractDefinitions(deps.Ctx, c.Locator)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	if len(defs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no definitions on %s\n", c.Locator)
		return wikrawler.Errorf(wikrawler.ENOTFOUND, "no definitions on %s", c.Locator)
	}

	for _, d := range defs {
		fmt.Fprintf(deps.Stdout, "%s: %s\n", d.PartOfSpeech.Name(), d.Text)
	}
	return nil
}
