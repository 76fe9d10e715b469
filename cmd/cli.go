package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fzft/go-hashset/deps/linenoise"
	"github.com/fzft/go-hashset/log"
	"github.com/google/shlex"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// maxLineSize bounds one input line; bufio.Scanner stops at 64 KiB by default.
const maxLineSize = 16 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return scanner
}

type HsetCli struct {
	config *Config
	in     io.Reader
	out    io.Writer
}

func NewHsetCli(config *Config, in io.Reader, out io.Writer) *HsetCli {
	return &HsetCli{config: config, in: in, out: out}
}

// Run starts a line-editing session when input is a terminal, and otherwise
// executes one command per input line without prompting.
func (cli *HsetCli) Run() error {
	sess, err := NewSession(cli.config, cli.out)
	if err != nil {
		return err
	}
	log.Logger.Info("session start",
		zap.String("key_type", cli.config.KeyType),
		zap.Int("initial_buckets", cli.config.InitialBuckets),
		zap.Float64("max_load_factor", cli.config.MaxLoadFactor))
	defer log.Logger.Info("session end")

	if f, ok := cli.in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return cli.repl(sess)
	}
	return cli.batch(sess)
}

func (cli *HsetCli) repl(sess Session) (err error) {
	line := linenoise.New(cli.config.HistoryFile)
	defer func() {
		err = multierr.Append(err, line.Close())
	}()

	for {
		input, perr := line.Prompt(sess.Prompt())
		if perr != nil {
			if perr == liner.ErrPromptAborted || perr == io.EOF {
				return nil
			}
			return errors.Wrap(perr, "read prompt")
		}

		argv, serr := splitArgs(input)
		if serr != nil {
			fmt.Fprintln(cli.out, "Invalid argument(s)")
			line.AppendHistory(input)
			continue
		} else if len(argv) == 0 {
			continue
		}
		line.AppendHistory(input)

		if isClearScreen(argv) {
			cli.clearScreen(line)
			continue
		}
		if cli.exec(sess, argv) {
			return nil
		}
	}
}

func (cli *HsetCli) batch(sess Session) error {
	scanner := newLineScanner(cli.in)
	for scanner.Scan() {
		argv, err := splitArgs(scanner.Text())
		if err != nil {
			fmt.Fprintln(cli.out, "Invalid argument(s)")
			continue
		}
		if cli.exec(sess, argv) {
			break
		}
	}
	return errors.Wrap(scanner.Err(), "read commands")
}

func isClearScreen(argv []string) bool {
	return len(argv) == 1 && strings.EqualFold(argv[0], "cls")
}

type screenClearer interface {
	ClearScreen(w io.Writer) error
}

func (cli *HsetCli) clearScreen(c screenClearer) {
	if err := c.ClearScreen(cli.out); err != nil {
		log.Logger.Warn("clear screen", zap.Error(err))
	}
}

// exec runs one command and reports whether the session is over.
func (cli *HsetCli) exec(sess Session, argv []string) bool {
	err := sess.Exec(argv)
	switch {
	case err == nil:
		return false
	case errors.Is(err, errQuit):
		return true
	default:
		fmt.Fprintf(cli.out, "(error) %s\n", err)
		return false
	}
}

// splitArgs splits a line with shell quoting rules: single and double quotes
// group words, backslash escapes, and # starts a comment. An unterminated
// quote or trailing escape is an error.
func splitArgs(line string) ([]string, error) {
	argv, err := shlex.Split(line)
	return argv, errors.Wrap(err, "split args")
}
