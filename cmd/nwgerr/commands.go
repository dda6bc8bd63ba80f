package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/samber/oops"

	nwgerror "github.com/nwg-io/nwg-error"
)

type cli struct {
	out    io.Writer
	log    zerolog.Logger
	format string
}

// emit writes v as indented JSON, or text followed by a newline.
func (c *cli) emit(v any, text string) error {
	if c.format == "json" {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(c.out, text)
	return err
}

type listEntry struct {
	Code    nwgerror.Code `json:"code"`
	Kind    string        `json:"kind"`
	Message string        `json:"message"`
}

func listEntries() []listEntry {
	var out []listEntry
	for _, k := range nwgerror.AllKinds() {
		var msg string
		switch k {
		case nwgerror.KindEventNotSupported:
			msg = nwgerror.EventNotSupported("<event>").Describe()
		case nwgerror.KindSystem:
			msg = "A system error was raised: <system error>"
		default:
			e, _ := nwgerror.Sentinel(k)
			msg = e.Describe()
		}
		out = append(out, listEntry{Code: k.Code(), Kind: k.String(), Message: msg})
	}
	for _, s := range nwgerror.AllSystemErrors() {
		out = append(out, listEntry{Code: s.Code(), Kind: s.String(), Message: s.Sentence()})
	}
	return out
}

func (c *cli) list() error {
	entries := listEntries()
	if c.format == "json" {
		return c.emit(entries, "")
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tKIND\tMESSAGE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Code, e.Kind, e.Message)
	}
	return tw.Flush()
}

func (c *cli) describe(args []string) error {
	errorBuilder := oops.
		In("cli").
		Tags("describe")

	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	event := fs.String("event", "", "")
	system := fs.String("system", "", "")
	osCode := fs.Uint64("os-code", 0, "")
	osText := fs.String("os-text", "", "")
	if err := fs.Parse(args); err != nil {
		return errorBuilder.Wrapf(err, "invalid describe flags")
	}
	if fs.NArg() != 1 {
		return errorBuilder.Errorf("describe takes exactly one code")
	}

	osCodeSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "os-code" {
			osCodeSet = true
		}
	})
	if osCodeSet {
		if *osCode > math.MaxUint32 {
			return errorBuilder.
				With("os_code", *osCode).
				Errorf("-os-code %d does not fit in 32 bits", *osCode)
		}
		code := uint32(*osCode)
		text := *osText
		if text == "" {
			text = nwgerror.StatusText(code)
		}
		restore := nwgerror.SetProbe(nwgerror.StaticProbe(code, text))
		defer restore()
	}

	code := nwgerror.Code(fs.Arg(0))
	c.log.Debug().Str("code", string(code)).Msg("describing")

	if s, ok := nwgerror.SystemForCode(code); ok {
		return c.emit(s, s.Describe())
	}

	kind, ok := nwgerror.KindForCode(code)
	if !ok {
		return errorBuilder.
			Code("unknown_code").
			With("code", string(code)).
			Errorf("unknown error code %q", code)
	}

	var e nwgerror.Error
	switch kind {
	case nwgerror.KindEventNotSupported:
		if *event == "" {
			return errorBuilder.Errorf("-event is required for %s", code)
		}
		e = nwgerror.EventNotSupported(nwgerror.EventKind(*event))
	case nwgerror.KindSystem:
		s, ok := nwgerror.SystemForCode(nwgerror.Code(*system))
		if !ok {
			return errorBuilder.
				With("system", *system).
				Errorf("-system must be one of the system codes, got %q", *system)
		}
		e = nwgerror.System(s)
	default:
		e, _ = nwgerror.Sentinel(kind)
	}
	return c.emit(e, e.Describe())
}

type errnoEntry struct {
	Code uint32 `json:"code"`
	Text string `json:"text"`
	Name string `json:"name,omitempty"`
}

func (c *cli) errno(args []string) error {
	if len(args) != 1 {
		return oops.In("cli").Tags("errno").Errorf("errno takes exactly one code")
	}
	n, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		return oops.In("cli").Tags("errno").With("code", args[0]).Wrapf(err, "invalid OS error code")
	}
	st := nwgerror.OSStatus{Code: uint32(n), Text: nwgerror.StatusText(uint32(n))}
	text := st.String()
	if name := st.Name(); name != "" {
		text += " (" + name + ")"
	}
	return c.emit(errnoEntry{Code: st.Code, Text: st.Text, Name: st.Name()}, text)
}
