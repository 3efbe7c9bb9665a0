package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// dispatcher is the command surface the REPL drives. App satisfies it;
// tests provide a recording stub.
type dispatcher interface {
	dispatch(ctx context.Context, name string, args []string) error
	help(ctx context.Context) string
}

// runREPL reads one command per line from reader and hands it to d.
//
// The first token is the command name, the rest are its arguments. The
// prompt shows statusFn(). The loop ends on EOF, on a cancelled ctx, or
// when the user types "exit" or "quit". Command errors are reported by the
// commands themselves and do not stop the loop.
func runREPL(ctx context.Context, d dispatcher, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("jotti %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help", "?":
			printlnFn(d.help(ctx))

		case "exit", "quit":
			printlnFn("Tschüss!")
			return

		default:
			if err := d.dispatch(ctx, name, args); errors.Is(err, errUnknownCommand) {
				printlnFn("Unbekannter Befehl:", name)
			}
		}
	}
}
