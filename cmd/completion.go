// FarmQuest - Gamified Farming Habits
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var supportedShells = []string{"bash", "zsh", "fish"}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell autocompletion",
	Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected from $SHELL.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: supportedShells,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell(os.Getenv("SHELL"))
		if len(args) > 0 {
			shell = args[0]
		}
		return generateCompletion(cmd.OutOrStdout(), shell)
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// detectShell maps a login shell path to a supported shell name, defaulting
// to bash.
func detectShell(loginShell string) string {
	base := filepath.Base(loginShell)
	for _, s := range supportedShells {
		if base == s {
			return s
		}
	}
	return "bash"
}

func generateCompletion(w io.Writer, shell string) error {
	var err error
	var hints []string
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
		hints = []string{
			"# To enable autocompletion, add this to your ~/.bashrc:",
			"#",
			"#   eval \"$(farmquest completion bash)\"",
		}
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
		hints = []string{
			"# To enable autocompletion, add this to your ~/.zshrc:",
			"#",
			"#   eval \"$(farmquest completion zsh)\"",
		}
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
		hints = []string{
			"# To enable autocompletion, run:",
			"#",
			"#   farmquest completion fish > ~/.config/fish/completions/farmquest.fish",
		}
	default:
		return fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(supportedShells, ", "))
	}
	if err != nil {
		return fmt.Errorf("generating %s completion: %w", shell, err)
	}
	showHints(hints...)
	return nil
}

// showHints prints usage hints to stderr, but only when stdout is a terminal
// (i.e., not being piped to eval or redirected to a file).
func showHints(lines ...string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Fprintln(os.Stderr)
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}
}
