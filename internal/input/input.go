// Package input contains identifiers used in getting HXL source text from a
// terminal for hxlc's repl subcommand.
package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// BlockReader reads HXL source from stdin using a Go implementation of the
// GNU Readline library, one line at a time, grouping consecutive non-blank
// lines into a single block. This keeps input clear of typing and editing
// escape sequences and enables the use of command history.
//
// BlockReader should not be used directly; instead, create one with
// [NewBlockReader].
type BlockReader struct {
	rl     *readline.Instance
	prompt string
}

// NewBlockReader creates a new BlockReader and initializes readline. The
// returned BlockReader must have Close() called on it before disposal to
// properly tear down readline resources.
func NewBlockReader(prompt string) (*BlockReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &BlockReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close cleans up readline resources associated with the BlockReader.
func (br *BlockReader) Close() error {
	return br.rl.Close()
}

// ReadBlock reads lines from stdin until a blank line or end of input,
// joining them with newlines into a single source block. A block containing
// no non-blank lines is never returned: ReadBlock keeps reading until it has
// at least one line of content, or until the underlying stream ends.
//
// If reading fails after at least one line has been accumulated, those lines
// are returned as the block with a nil error. If it fails before any line has
// been accumulated, the returned string is empty and the error is the one
// readline returned (io.EOF at end of input).
func (br *BlockReader) ReadBlock() (string, error) {
	var lines []string

	for {
		line, err := br.rl.Readline()
		if err != nil {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			return "", err
		}

		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			continue
		}

		lines = append(lines, line)
		br.rl.SetPrompt(continuationPrompt(br.prompt))
	}
}

// SetPrompt updates the prompt shown before each new block.
func (br *BlockReader) SetPrompt(p string) {
	br.prompt = p
	br.rl.SetPrompt(p)
}

func continuationPrompt(prompt string) string {
	pad := strings.Repeat(" ", len(prompt)-1)
	return pad + "| "
}

// EOF reports whether err is the sentinel returned by ReadBlock at end of
// input.
func EOF(err error) bool {
	return err == io.EOF
}
