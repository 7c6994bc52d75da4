package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/makanscan/internal/client/api"
	"github.com/stretchr/testify/assert"
)

// capturePrintln redirects printlnFn into the returned slice.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeExec struct {
	current Route
	calls   []string
	fail    map[string]error
}

func (f *fakeExec) route() Route { return f.current }

func (f *fakeExec) commands(r Route) []command {
	cmd := func(name string, next Route) command {
		return command{name: name, usage: name, run: func(_ context.Context, args []string) error {
			f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
			if err := f.fail[name]; err != nil {
				return err
			}
			f.current = next
			return nil
		}}
	}
	switch r {
	case RouteAuth:
		return []command{cmd("login", RouteMain), cmd("register", RouteMain)}
	case RouteMain:
		return []command{cmd("foods", RouteMain), cmd("logout", RouteAuth)}
	}
	return nil
}

func TestRunREPL_RouteDependentCommands(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.Join([]string{
		"foods",
		"login",
		"foods 2",
		"",
		"register",
		"logout",
		"foods",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{current: RouteAuth}
	runREPL(context.Background(), exec, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{"login", "foods 2", "logout"}, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foods")
	assert.Contains(t, *lines, "Unknown command: register")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_HelpFollowsRoute(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{current: RouteAuth}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("help\nlogin\nhelp\nquit\n"))

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "  login\n  register\n  exit")
	assert.Contains(t, out, "  foods\n  logout\n  exit")
}

func TestRunREPL_HelpWithoutCommands(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{current: RouteError}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("help\n"))

	assert.Contains(t, *lines, "No commands available while error. Available: exit")
}

func TestRunREPL_ErrorsAreReported(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{
		current: RouteAuth,
		fail: map[string]error{
			"login":    errInvalidCredentials,
			"register": &api.APIError{StatusCode: 409, Message: "email already registered"},
		},
	}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login\nregister\n"))

	assert.Contains(t, *lines, "Error: Invalid credentials")
	assert.Contains(t, *lines, "Error: email already registered")
	assert.Equal(t, RouteAuth, exec.current)
}

func TestRunREPL_EOFInsideCommandStops(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{current: RouteAuth, fail: map[string]error{"login": io.EOF}}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login\nregister\n"))

	assert.Equal(t, []string{"login"}, exec.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	lines := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return " (siti@example.com)" }, rdr(""))

	assert.Equal(t, []string{"makanscan (siti@example.com)> "}, *lines)
}

func TestRunREPL_CancelledContextStops(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{current: RouteAuth}
	runREPL(ctx, exec, func() string { return "" }, rdr("login\n"))

	assert.Empty(t, exec.calls)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Please fill in all fields", describe(errFillAllFields))
	assert.Equal(t, "Please fill in all fields", describe(fmt.Errorf("register: %w", errFillAllFields)))
	assert.Equal(t, "Server unavailable", describe(&api.TransportError{Op: "GET /foods", Err: errors.New("connection refused")}))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}
