package ui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"jailfs/internal/jail"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Interpreter executes shell command lines against a [jail.Jail]. It is
// shared between the TUI and the plain terminal session.
type Interpreter struct {
	jail      *jail.Jail
	osHandler osProvider
}

// NewInterpreter returns a pointer to a new [Interpreter].
func NewInterpreter(j *jail.Jail, osHandler osProvider) *Interpreter {
	return &Interpreter{
		jail:      j,
		osHandler: osHandler,
	}
}

// Prompt renders the input prompt for the jail's current location.
func (in *Interpreter) Prompt() string {
	return fmt.Sprintf("jail:%s$ ", in.jail.CurrentDirectory())
}

// Execute runs a single command line and returns its printable output,
// along with whether the session should end.
func (in *Interpreter) Execute(line string) (string, bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", false
	}

	verb := args[0]
	args = args[1:]

	overwrite := false
	recursive := false

	filtered := args[:0]
	for _, arg := range args {
		switch arg {
		case "-f":
			overwrite = true
		case "-r", "-p":
			recursive = true
		default:
			filtered = append(filtered, arg)
		}
	}
	args = filtered

	switch verb {
	case "quit", "exit":
		return "", true

	case "help":
		return helpText, false

	case "pwd":
		return string(in.jail.CurrentDirectory()), false

	case "root":
		return string(in.jail.Root()), false

	case "cd":
		if len(args) != 1 {
			return "usage: cd <dir>", false
		}

		return report(in.jail.ChangeDirectory(args[0])), false

	case "ls":
		pattern := "./"
		if len(args) == 1 {
			pattern = args[0]
		}

		return in.list(pattern), false

	case "find":
		if len(args) < 1 || len(args) > 2 {
			return "usage: find <pattern> [dir]", false
		}
		startDir := "."
		if len(args) == 2 {
			startDir = args[1]
		}

		return in.find(args[0], startDir), false

	case "cp":
		if len(args) != 2 {
			return "usage: cp [-f] <src> <dst>", false
		}

		return report(in.jail.Copy(args[0], args[1], overwrite)), false

	case "mv":
		if len(args) != 2 {
			return "usage: mv [-f] <src> <dst>", false
		}

		return report(in.jail.Move(args[0], args[1], overwrite)), false

	case "rm":
		if len(args) != 1 {
			return "usage: rm [-r] <path>", false
		}

		return report(in.jail.Remove(args[0], recursive)), false

	case "mkdir":
		if len(args) != 1 {
			return "usage: mkdir [-p] <dir>", false
		}

		return report(in.jail.Mkdir(args[0], recursive)), false

	case "rmdir":
		if len(args) != 1 {
			return "usage: rmdir [-r] <dir>", false
		}

		return report(in.jail.RemoveDirectory(args[0], recursive)), false

	case "umask":
		if len(args) == 0 {
			return fmt.Sprintf("%04o", in.jail.PermissionMask()), false
		}

		mask, err := strconv.ParseUint(args[0], 8, 32)
		if err != nil {
			return "umask: not an octal value: " + args[0], false
		}
		in.jail.SetPermissionMask(uint32(mask))

		return "", false

	default:
		return "unknown command: " + verb + " (try: help)", false
	}
}

func (in *Interpreter) list(pattern string) string {
	locals, err := in.jail.List(pattern)
	if err != nil {
		return "error: " + err.Error()
	}

	var sb strings.Builder

	for _, local := range locals {
		system, err := in.jail.SystemPath(string(local))
		if err != nil {
			continue
		}

		detail := "?"
		if info, err := in.osHandler.Stat(string(system)); err == nil {
			if info.IsDir() {
				detail = "<dir>"
			} else {
				detail = humanize.Bytes(uint64(info.Size()))
			}
		}

		fmt.Fprintf(&sb, "%-10s %s\n", detail, local)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (in *Interpreter) find(pattern string, startDir string) string {
	locals, err := in.jail.Find(pattern, startDir)
	if err != nil {
		return "error: " + err.Error()
	}

	lines := make([]string, 0, len(locals))
	for _, local := range locals {
		lines = append(lines, string(local))
	}

	return strings.Join(lines, "\n")
}

// report maps an operation error to shell output, flattening aggregated
// errors onto separate lines.
func report(err error) string {
	if err == nil {
		return ""
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		lines := make([]string, 0, len(joined.Unwrap()))
		for _, sub := range joined.Unwrap() {
			lines = append(lines, "error: "+sub.Error())
		}

		return strings.Join(lines, "\n")
	}

	return "error: " + err.Error()
}

const helpText = `commands:
  pwd                     print the current directory
  cd <dir>                change the current directory
  ls [pattern]            list entries matching a single-level pattern
  find <pattern> [dir]    recursively match a pattern
  cp [-f] <src> <dst>     copy (a trailing / on dst copies into it)
  mv [-f] <src> <dst>     move via a single atomic rename
  rm [-r] <path>          remove a file (or a whole tree with -r)
  mkdir [-p] <dir>        create a directory (with parents via -p)
  rmdir [-r] <dir>        remove an empty directory (or a tree with -r)
  umask [octal]           show or set the permission mask
  root                    print the confinement root
  quit                    leave the shell`
