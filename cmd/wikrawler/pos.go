package main

import (
	"fmt"

	"github.com/SirDavvie/wikrawler"
)

// Run executes the pos command.
func (c *PosCmd) Run(deps *Dependencies) error {
	for _, p := range wikrawler.PartsOfSpeech() {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", p.Code(), p.Name())
	}
	return nil
}
