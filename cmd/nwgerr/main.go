// Command nwgerr looks up toolkit error codes and prints the messages the
// toolkit would show for them.
//
//	nwgerr list
//	nwgerr describe control_in_use
//	nwgerr describe -event Click event_not_supported
//	nwgerr describe -system window_creation_fail -os-code 5 system
//	nwgerr errno 13
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/oops"

	"github.com/nwg-io/nwg-error/internal/config"
	"github.com/nwg-io/nwg-error/internal/logging"
	"github.com/nwg-io/nwg-error/zlog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: nwgerr [-config file]... [-format text|json] <command> [args]

commands:
  list                         list every error code
  describe [flags] <code>      print the message for a code
      -event <kind>            event kind for event_not_supported
      -system <code>           system code for system
      -os-code <n>             OS error code to report
      -os-text <text>          OS text to report (default: platform text)
  errno <code>                 print the OS text for an OS error code
`)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nwgerr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs.Output()) }

	var configPaths stringList
	fs.Var(&configPaths, "config", "YAML config file (repeatable)")
	format := fs.String("format", "", "output format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(config.LoadOptions{YamlFilePaths: configPaths})
	if err != nil {
		fmt.Fprintf(stderr, "nwgerr: %v\n", err)
		return 1
	}
	switch *format {
	case "":
	case "text", "json":
		cfg.Output.Format = *format
	default:
		fmt.Fprintf(stderr, "nwgerr: invalid -format %q, want text or json\n", *format)
		return 2
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "nwgerr: %v\n", err)
		return 1
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr)
		return 2
	}

	c := &cli{out: stdout, log: logger, format: cfg.Output.Format}
	switch rest[0] {
	case "list":
		err = c.list()
	case "describe":
		err = c.describe(rest[1:])
	case "errno":
		err = c.errno(rest[1:])
	default:
		err = oops.
			In("cli").
			With("command", rest[0]).
			Errorf("unknown command %q", rest[0])
	}
	if err != nil {
		zlog.Error(logger, err, "command failed")
		fmt.Fprintf(stderr, "nwgerr: %v\n", err)
		return 1
	}
	return 0
}
