package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dyluth/forge/internal/printer"
	"github.com/dyluth/forge/internal/store"
	"github.com/spf13/cobra"
)

const shellPrompt = "forge> "

func newShellCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands against one board session",
		Long: `Start an interactive session. Each line is run as a forge command
against the same board, so created tasks, moves and the inspector persist
until the session ends. Double or single quotes group words.

Changes to the board are echoed as they happen. Type 'exit' or 'quit'
(or send EOF) to leave.

Example session:
  forge> task create --title "Weld chassis frame" --priority HIGH
  forge> inspect A-249
  forge> inspect advance
  forge> board --priority CRIT`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.inShell {
				printer.Warning("already in a shell\n")
				return nil
			}

			d, err := c.session()
			if err != nil {
				return err
			}

			if !c.echoing {
				d.Tasks.Subscribe(func(e store.Event) {
					printer.Step("%s\n", e)
				})
				c.echoing = true
			}

			c.inShell = true
			defer func() { c.inShell = false }()

			printer.Heading("FORGE // fabrication console")
			printer.Info("%d tasks on the board. Type 'help' for commands, 'exit' to quit.\n", d.Tasks.Len())

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out(cmd), shellPrompt)
				if !scanner.Scan() {
					fmt.Fprintln(out(cmd))
					break
				}

				words, err := splitWords(scanner.Text())
				if err != nil {
					printer.Error("invalid input", err.Error(), nil)
					continue
				}
				if len(words) == 0 {
					continue
				}
				if words[0] == "exit" || words[0] == "quit" {
					break
				}

				line := newRootCmd(c)
				line.SetIn(cmd.InOrStdin())
				line.SetOut(cmd.OutOrStdout())
				line.SetErr(cmd.ErrOrStderr())
				// Errors are reported as they happen; the session carries on
				_ = run(line, words)
			}

			return scanner.Err()
		},
	}
}

// splitWords splits a line on whitespace. Double or single quotes group
// words and are removed; a backslash escapes the next character.
func splitWords(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, fmt.Errorf("trailing backslash")
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
