package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, muscle string) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, name string) error
	Favorite(ctx context.Context, name string) error
	Unfavorite(ctx context.Context, name string) error
	Favorites(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FitBuddy CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list [muscle]  — list exercises, optionally for one muscle group
//	  - search <text>  — search exercises by name
//	  - show <name>    — show one exercise in full
//	  - fav <name>     — toggle an exercise as favorite
//	  - unfav <name>   — remove an exercise from favorites
//	  - favs           — list favorites
//	  - theme          — toggle dark mode
//	  - profile        — show the signed-in profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are printed and the loop continues;
// this keeps the REPL resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fitbuddy %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list [muscle], search <text>, show <name>, fav <name>, unfav <name>, favs, theme, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "list":
			err = a.List(ctx, arg)
		case "search":
			if arg == "" {
				printlnFn("Usage: search <text>")
				continue
			}
			err = a.Search(ctx, arg)
		case "show":
			if arg == "" {
				printlnFn("Usage: show <name>")
				continue
			}
			err = a.Show(ctx, arg)
		case "fav":
			if arg == "" {
				printlnFn("Usage: fav <name>")
				continue
			}
			err = a.Favorite(ctx, arg)
		case "unfav":
			if arg == "" {
				printlnFn("Usage: unfav <name>")
				continue
			}
			err = a.Unfavorite(ctx, arg)
		case "favs":
			err = a.Favorites(ctx)
		case "theme":
			err = a.ToggleTheme(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}

		if err != nil {
			printlnFn("Error: " + err.Error())
		}
	}
}
