package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Roop3005/path-darshak/internal/logging"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) describe(err error) string { return "failed: " + err.Error() }

func (f *fakeExec) commands() []command {
	record := func(name string) func(context.Context, []string) error {
		return func(_ context.Context, args []string) error {
			f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
			return nil
		}
	}
	return []command{
		{name: "login", guestOnly: true, help: "log in", run: func(context.Context, []string) error {
			f.calls = append(f.calls, "login")
			f.loggedIn = true
			return nil
		}},
		{name: "feed", usage: "[stream]", needsLogin: true, help: "list posts", run: record("feed")},
		{name: "boom", needsLogin: true, help: "always fails", run: func(context.Context, []string) error {
			return errors.New("kaput")
		}},
	}
}

func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var out strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_DispatchesAndGuards(t *testing.T) {
	out := captureOutput(t)
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.NewZapLogger(zap.New(core))

	input := strings.Join([]string{
		"help",
		"feed",
		"",
		"login",
		"login",
		"FEED Arts popular",
		"boom",
		"foobar",
		"exit",
		"feed",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, log, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{"login", "feed Arts popular"}, exec.calls)

	text := out.String()
	assert.Contains(t, text, "Please log in first.")
	assert.Contains(t, text, "Log out first.")
	assert.Contains(t, text, "failed: kaput")
	assert.Contains(t, text, "Unknown command: foobar")
	assert.Contains(t, text, "Bye!")

	started := logs.FilterMessage("command started").All()
	require.Len(t, started, 3)
	ops := map[string]bool{}
	for _, e := range started {
		op, ok := e.ContextMap()["op"].(string)
		require.True(t, ok)
		ops[op] = true
	}
	assert.Len(t, ops, 3)

	failed := logs.FilterMessage("command failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "boom", failed[0].ContextMap()["command"])
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, logging.NewNopLogger(), func() string { return "" }, rdr("feed"))
	assert.Equal(t, []string{"feed"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{loggedIn: true}
	runREPL(ctx, exec, logging.NewNopLogger(), func() string { return "" }, rdr("feed\n"))
	assert.Empty(t, exec.calls)
}

func TestHelpText_FiltersByLoginState(t *testing.T) {
	exec := &fakeExec{}

	guest := helpText(exec.commands(), false)
	assert.Contains(t, guest, "login")
	assert.NotContains(t, guest, "feed")

	member := helpText(exec.commands(), true)
	assert.NotContains(t, member, "log in")
	assert.Contains(t, member, "feed [stream]")
	assert.Contains(t, member, "exit | quit")
}
