// Package cli provides an interactive prompt for trying category tokens against the loaded lists.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/randomname/internal/utils"
	"github.com/bastiangx/randomname/pkg/phrase"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines of category tokens and prints phrases. Lines
// starting with ':' are commands, see help.
type InputHandler struct {
	gen          phrase.IGenerator
	in           io.Reader
	term         *Terminal
	count        int
	requestCount int
}

// NewInputHandler creates a prompt printing count phrases per line.
func NewInputHandler(gen phrase.IGenerator, in io.Reader, out io.Writer, count int) *InputHandler {
	if count <= 0 {
		count = 1
	}
	return &InputHandler{gen: gen, in: in, term: NewTerminal(out), count: count}
}

var errQuit = errors.New("quit")

// Start runs the prompt until the input ends or ":q" is entered.
func (h *InputHandler) Start() error {
	h.term.Title("randomname REPL")
	h.term.Hint("type category tokens and press Enter, :help for commands (Ctrl+D to exit)")
	scanner := bufio.NewScanner(h.in)
	for {
		h.term.Prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := h.handleInput(line); errors.Is(err, errQuit) {
			return nil
		}
	}
}

// handleInput runs one line and prints its outcome.
func (h *InputHandler) handleInput(line string) error {
	h.requestCount++
	fields := utils.SplitFields(line)
	for _, f := range fields {
		if !utils.IsValidToken(f) {
			h.term.Error("invalid token: " + strconv.Quote(f))
			return nil
		}
	}
	start := time.Now()
	var (
		results []string
		err     error
	)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case ":q", ":quit", ":exit":
		return errQuit
	case ":help", ":h":
		h.term.Help()
		return nil
	case ":n":
		n, rest, perr := countArg(args)
		if perr != nil {
			h.term.Error(perr.Error())
			return nil
		}
		results, err = h.gen.GenerateN(n, rest)
	case ":sample", ":s":
		n, rest, perr := countArg(args)
		if perr != nil {
			n, rest = 0, args
		}
		results, err = h.gen.Sample(n, rest...)
	case ":available", ":ls":
		results, err = h.gen.Available(args...)
	case ":search", ":f":
		if len(args) == 0 {
			h.term.Error("usage: :search <pattern> [categories...]")
			return nil
		}
		results, err = h.gen.Search(args[0], args[1:]...)
	case ":stats":
		h.term.Stats(h.gen.Stats())
		return nil
	case ":reload":
		if err := h.gen.Reload(); err != nil {
			h.term.Error(err.Error())
			return nil
		}
		h.term.Hint("reloaded")
		return nil
	default:
		if strings.HasPrefix(cmd, ":") {
			h.term.Error("unknown command " + cmd)
			return nil
		}
		results, err = h.gen.GenerateN(h.count, fields)
	}
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), line)
	if err != nil {
		var unresolved *wordlist.UnresolvedError
		if errors.As(err, &unresolved) {
			h.term.Unresolved(unresolved)
			return nil
		}
		h.term.Error(err.Error())
		return nil
	}
	h.term.Results(results)
	return nil
}

// countArg reads a leading count from args.
func countArg(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("missing count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, nil, errors.New("count must be a non-negative integer, got " + args[0])
	}
	return n, args[1:], nil
}
