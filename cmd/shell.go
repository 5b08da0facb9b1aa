package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/featdiibs/simple-chord-transposer/constants"
	"github.com/featdiibs/simple-chord-transposer/pitch"
	"github.com/featdiibs/simple-chord-transposer/session"
	"github.com/featdiibs/simple-chord-transposer/transpose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Starts an interactive transposer",
	Long: `Starts an interactive shell. Set the keys or the shift with commands,
then type or paste chord lines to see them transposed. Commands start
with ':', so lyric lines such as "down" are never mistaken for one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := session.New()
		s.SetFlats(cfg.Flats)
		s.SetShift(cfg.Shift)
		return runShell(cmd.OutOrStdout(), s)
	},
}

type shell struct {
	out   io.Writer
	s     *session.Session
	ann   transpose.Annotator
	sheet []string
}

func keyCompleter() []readline.PrefixCompleterInterface {
	items := make([]readline.PrefixCompleterInterface, 0, len(pitch.KeyNames))
	for _, k := range pitch.KeyNames {
		items = append(items, readline.PcItem(k))
	}
	return items
}

func shellCompleter() readline.AutoCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(":from", keyCompleter()...),
		readline.PcItem(":to", keyCompleter()...),
		readline.PcItem(":shift"),
		readline.PcItem(":up"),
		readline.PcItem(":down"),
		readline.PcItem(":sharps"),
		readline.PcItem(":flats"),
		readline.PcItem(":detect"),
		readline.PcItem(":status"),
		readline.PcItem(":help"),
		readline.PcItem(":exit"),
	)
}

func runShell(out io.Writer, s *session.Session) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "transposer> ",
		HistoryFile:  filepath.Join(homeDir, constants.HistoryFileName),
		AutoComplete: shellCompleter(),
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer rl.Close()

	sh := &shell{out: out, s: s, ann: transpose.NewANSIAnnotator(cfg.Color)}
	sh.help()
	sh.status()
	for {
		input, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		if !sh.handle(input) {
			return nil
		}
	}
}

// handle runs one shell line. Commands start with ':'; every other line is
// transposed, including lyrics such as "down" or "to E". It returns false
// when the shell should exit.
func (sh *shell) handle(input string) bool {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, ":") {
		sh.sheet = append(sh.sheet, input)
		fmt.Fprintln(sh.out, sh.s.Transpose(input, sh.ann).Annotated)
		return true
	}

	fields := strings.Fields(strings.TrimPrefix(trimmed, ":"))
	if len(fields) == 0 {
		sh.help()
		return true
	}
	cmd, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch {
	case cmd == "exit" || cmd == "quit":
		return false
	case cmd == "help":
		sh.help()
	case cmd == "status":
		sh.status()
	case cmd == "from" && len(fields) == 2:
		sh.check(sh.s.SetFrom(arg))
	case cmd == "to" && len(fields) == 2:
		sh.check(sh.s.SetTo(arg))
	case cmd == "shift" && len(fields) == 2:
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(sh.out, "invalid shift: %s\n", arg)
			return true
		}
		sh.s.SetShift(n)
		sh.status()
	case cmd == "up" && len(fields) == 1:
		sh.s.Up()
		sh.status()
	case cmd == "down" && len(fields) == 1:
		sh.s.Down()
		sh.status()
	case cmd == "sharps" && len(fields) == 1:
		sh.s.SetFlats(false)
		sh.status()
	case cmd == "flats" && len(fields) == 1:
		sh.s.SetFlats(true)
		sh.status()
	case cmd == "detect" && len(fields) == 1:
		if k, ok := sh.s.Detect(strings.Join(sh.sheet, "\n")); ok {
			fmt.Fprintf(sh.out, "detected: %s\n", k)
		} else {
			fmt.Fprintln(sh.out, "no key")
		}
	default:
		fmt.Fprintf(sh.out, "unknown command: %s (try :help)\n", trimmed)
	}
	return true
}

func (sh *shell) check(err error) {
	if err != nil {
		fmt.Fprintf(sh.out, "%v\n", err)
		return
	}
	sh.status()
}

func (sh *shell) status() {
	spelling := "sharps"
	if sh.s.PreferFlats {
		spelling = "flats"
	}
	fmt.Fprintf(sh.out, "from %s to %s, shift %d, %s\n", sh.s.From, sh.s.To, sh.s.Shift, spelling)
}

func (sh *shell) help() {
	fmt.Fprintf(sh.out, "Commands:\n")
	fmt.Fprintf(sh.out, "  :from <key>       Set the original key\n")
	fmt.Fprintf(sh.out, "  :to <key>         Set the target key\n")
	fmt.Fprintf(sh.out, "  :shift <n>        Set the shift in semitones\n")
	fmt.Fprintf(sh.out, "  :up | :down       Shift by one semitone\n")
	fmt.Fprintf(sh.out, "  :sharps | :flats  Pick the spelling\n")
	fmt.Fprintf(sh.out, "  :detect           Guess the original key from the lines so far\n")
	fmt.Fprintf(sh.out, "  :status           Show the current settings\n")
	fmt.Fprintf(sh.out, "  :exit             Leave the shell\n")
	fmt.Fprintf(sh.out, "Any line without a leading ':' is transposed.\n\n")
}
