package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root runs the command loop until "exit" or end of input. Commands and
// prompts share a.reader, so a command can read its own input lines.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Contact Keeper CLI (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "ck> ")
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, token, ping, exit")
		case "register":
			_ = a.Register(ctx)
		case "token":
			if t := a.authService.Token(); t != "" {
				fmt.Fprintln(a.out, t)
			} else {
				fmt.Fprintln(a.out, "Not registered yet")
			}
		case "ping":
			if err := a.authService.Ping(ctx); err != nil {
				fmt.Fprintln(a.out, "Server unavailable:", err.Error())
			} else {
				fmt.Fprintln(a.out, "Server is up")
			}
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
