package main

import (
	"fmt"
	"strings"

	"github.com/hxlconf/hxl/internal/config"
	"github.com/hxlconf/hxl/internal/input"

	"github.com/hxlconf/hxl"
)

// runRepl reads HXL blocks from stdin, one property per line, terminated by
// a blank line, and reports diagnostics for each block as it is entered.
// Input is read through internal/input's BlockReader, which wraps
// github.com/chzyer/readline for history and line editing. A block
// consisting of the single word "quit" ends the session.
func runRepl(cfg config.Config) error {
	br, err := input.NewBlockReader("hxl> ")
	if err != nil {
		return err
	}
	defer br.Close()

	for {
		block, err := br.ReadBlock()
		if input.EOF(err) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(block) == "quit" {
			return nil
		}

		evalBlock(cfg, block)
		br.SetPrompt("hxl> ")
	}
}

func evalBlock(cfg config.Config, block string) {
	source := block + "\n"

	_, errs := hxl.CheckSyntax(source)
	if len(errs) == 0 {
		fmt.Println("OK")
		return
	}

	fmt.Println(renderErrorTable(errs, cfg.Width))
}
