package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/user/videobarcode/pkg/barcode"
)

// Exit codes.
const (
	exitOK              = 0
	exitFailure         = 1
	exitInvalidArgument = 2
	exitNotFound        = 3
	exitDecodeError     = 4
)

// valueFlagNames lists root flags that consume the following argument.
var valueFlagNames = []string{
	"n", "frames",
	"w", "width",
	"h", "height",
	"backend", "config", "debug-dir", "summary",
	"l", "log-level", "log-format",
}

var valueFlags = func() map[string]bool {
	m := make(map[string]bool, 2*len(valueFlagNames))
	for _, name := range valueFlagNames {
		m["-"+name] = true
		if len(name) > 1 {
			m["--"+name] = true
		}
	}
	return m
}()

// subcommands are passed to the CLI parser untouched.
var subcommands = map[string]bool{
	"inspect": true,
	"version": true,
	"help":    true,
}

// normalizeArgs rewrites the root command line for the flag parser:
//
//   - a bare -b/--blur becomes --blur=100, and -b N becomes --blur=N
//   - flags may follow the positional SOURCE and DEST; positionals are moved
//     after a "--" terminator so the parser sees every flag
//
// args[0] is the program name.
func normalizeArgs(args []string) []string {
	if len(args) < 2 || subcommands[args[1]] {
		return args
	}

	out := []string{args[0]}
	var positional []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "-b" || arg == "--blur" || arg == "-blur":
			if i+1 < len(args) && isInteger(args[i+1]) {
				out = append(out, "--blur="+args[i+1])
				i++
			} else {
				out = append(out, "--blur="+strconv.Itoa(barcode.DefaultBlur))
			}
		case valueFlags[arg]:
			out = append(out, arg)
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			out = append(out, arg)
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, barcode.ErrInvalidArgument):
		return exitInvalidArgument
	case errors.Is(err, barcode.ErrNotFound):
		return exitNotFound
	case errors.Is(err, barcode.ErrDecode):
		return exitDecodeError
	default:
		return exitFailure
	}
}
