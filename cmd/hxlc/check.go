package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rosed"

	"github.com/hxlconf/hxl/internal/config"
	"github.com/hxlconf/hxl/internal/util"

	"github.com/hxlconf/hxl"
)

// runCheckAll runs runCheck over every named file in turn and, when more
// than one file was given, prints a closing line naming whichever ones had
// diagnostics. It reports whether every file was clean.
func runCheckAll(cfg config.Config, paths []string) bool {
	var failed []string

	for _, path := range paths {
		if !runCheck(cfg, path) {
			failed = append(failed, path)
		}
	}

	if len(paths) > 1 && len(failed) > 0 {
		fmt.Printf("Files with diagnostics: %s\n", util.MakeTextList(failed))
	}

	return len(failed) == 0
}

// runCheck runs the structural pipeline over the named file and prints
// either a success summary or a table of diagnostics. It reports whether the
// file was clean.
func runCheck(cfg config.Config, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return false
	}

	durations, errs := hxl.CheckSyntax(string(data))
	if len(errs) == 0 {
		fmt.Printf("%s: OK (tokenize %s, parse %s, analyze %s, transform %s, total %s)\n",
			path,
			durations.Tokenization,
			durations.Parsing,
			durations.SemanticAnalysis,
			durations.Transformation,
			durations.Total(),
		)
		return true
	}

	fmt.Println(renderErrorTable(errs, cfg.Width))
	return false
}

// renderErrorTable renders a diagnostic list as a Code | Line | Col | Message
// table, the same InsertTableOpts construct internal/tunascript/parser.go
// uses to print LR tables.
func renderErrorTable(errs hxl.ErrorList, width int) string {
	data := [][]string{{"CODE", "LINE", "COL", "MESSAGE"}}

	for _, e := range errs {
		data = append(data, []string{
			e.Code.String(),
			fmt.Sprintf("%d", e.Line),
			fmt.Sprintf("%d", e.Col),
			e.Message,
		})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
