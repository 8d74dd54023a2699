package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	Add(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Calendar(ctx context.Context, args []string) error
	Summary(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Exports(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Guest(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
}

const (
	helpCommon    = "add <text #tag @project>, list [today|YYYY-MM-DD] [#tag] [@project] [words], edit <id> [text], delete <id>, search <words>, calendar [year], summary [style] [focus=a,b] [metrics], export [csv|md]"
	helpSignedIn  = "exports, export <csv|md> upload, logout, status, exit"
	helpSignedOut = "login <github|google>, guest, status, exit"
)

// runREPL reads a line, takes the first word as the command and dispatches
// it to a. Command errors are printed and the loop goes on. The loop ends
// on EOF or on "exit" / "quit".
//
// Commands that prompt for more input read from the same reader, so the
// loop reads whole lines rather than scanning ahead.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("standup %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands:", helpCommon+", "+helpSignedIn)
			} else {
				printlnFn("Available commands:", helpCommon+", "+helpSignedOut)
			}
		case "a", "add":
			err = a.Add(ctx, args)
		case "l", "list":
			err = a.List(ctx, args)
		case "edit":
			err = a.Edit(ctx, args)
		case "rm", "delete":
			err = a.Delete(ctx, args)
		case "search":
			err = a.Search(ctx, args)
		case "cal", "calendar":
			err = a.Calendar(ctx, args)
		case "summary":
			err = a.Summary(ctx, args)
		case "export":
			err = a.Export(ctx, args)
		case "exports":
			err = a.Exports(ctx, args)
		case "login":
			err = a.Login(ctx, args)
		case "guest":
			err = a.Guest(ctx, args)
		case "logout":
			err = a.Logout(ctx, args)
		case "status":
			err = a.Status(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
