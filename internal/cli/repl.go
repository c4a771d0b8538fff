package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Roop3005/path-darshak/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb.
type command struct {
	name       string
	usage      string
	help       string
	needsLogin bool
	guestOnly  bool
	run        func(ctx context.Context, args []string) error
}

func (c command) availableTo(loggedIn bool) bool {
	return !(c.needsLogin && !loggedIn) && !(c.guestOnly && loggedIn)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	commands() []command
	describe(err error) string
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// Every command runs with a logger tagged with a fresh operation id.
// Handler errors are logged and shown to the user; they never end the loop.
func runREPL(ctx context.Context, a execIface, log logging.Logger, statusFn func() string, reader *bufio.Reader) {
	table := make(map[string]command)
	for _, c := range a.commands() {
		table[c.name] = c
	}

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("pp%s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error(ctx, "read command", "error", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := strings.ToLower(parts[0]), parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printlnFn(helpText(a.commands(), a.isLoggedIn()))
			continue
		}

		cmd, ok := table[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if !cmd.availableTo(a.isLoggedIn()) {
			if cmd.needsLogin {
				printlnFn("Please log in first.")
			} else {
				printlnFn("Log out first.")
			}
			continue
		}

		opLog := log.With("op", uuid.NewString(), "command", name)
		opLog.Debug(ctx, "command started", "args", len(args))
		if err := cmd.run(ctx, args); err != nil {
			opLog.Warn(ctx, "command failed", "error", err)
			printlnFn(a.describe(err))
		}
	}
}

func helpText(cmds []command, loggedIn bool) string {
	var lines []string
	for _, c := range cmds {
		if !c.availableTo(loggedIn) {
			continue
		}
		usage := c.name
		if c.usage != "" {
			usage += " " + c.usage
		}
		lines = append(lines, fmt.Sprintf("  %-28s %s", usage, c.help))
	}
	sort.Strings(lines)
	lines = append(lines, fmt.Sprintf("  %-28s %s", "exit | quit", "leave the program"))
	return "Available commands:\n" + strings.Join(lines, "\n")
}
