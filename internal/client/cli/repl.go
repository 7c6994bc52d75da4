package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/makanscan/internal/client/api"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb.
type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

// execIface is what the REPL needs from the application: the current route
// and the commands available on it. The real App satisfies it; tests can
// provide a lightweight stub.
type execIface interface {
	route() Route
	commands(r Route) []command
}

// runREPL reads a line from reader, parses the first token as the command and
// dispatches it among the commands of the current route. The route is
// re-evaluated for every line, so a login or logout switches the command set
// on the next prompt.
//
// "help" lists the commands of the current route, "exit" and "quit" leave
// the loop, as do EOF and a cancelled ctx. A failing command prints its
// error and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("makanscan%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil || ctx.Err() != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		route := a.route()
		cmds := a.commands(route)

		switch name {
		case "help":
			printHelp(route, cmds)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := lookup(cmds, name)
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			printlnFn("Error:", describe(err))
		}
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(route Route, cmds []command) {
	if len(cmds) == 0 {
		printlnFn(fmt.Sprintf("No commands available while %s. Available: exit", route))
		return
	}
	printlnFn("Available commands:")
	for _, c := range cmds {
		printlnFn("  " + c.usage)
	}
	printlnFn("  exit")
}

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg
	}
	return api.Message(err)
}
