// Package zlog adapts nwg-error values to zerolog.
//
// Toolkit errors render to multi-line text; in logs they are emitted as a
// structured object instead:
//
//	zlog.Error(logger, err, "create window failed")
//	// {"level":"error","error":{"code":"system","kind":"System",...},"message":"create window failed"}
package zlog

import (
	"errors"

	"github.com/rs/zerolog"

	nwgerror "github.com/nwg-io/nwg-error"
)

// Object wraps err so it can be passed to zerolog's Event.Object / EmbedObject.
// Foreign errors only get their message.
func Object(err error) zerolog.LogObjectMarshaler {
	return errObject{err: err}
}

type errObject struct {
	err error
}

func (o errObject) MarshalZerologObject(ev *zerolog.Event) {
	if o.err == nil {
		return
	}

	var e nwgerror.Error
	if !errors.As(o.err, &e) {
		if s, ok := nwgerror.SystemOf(o.err); ok {
			marshalSystem(ev, s, nwgerror.Capture(nwgerror.CurrentProbe()))
		}
		ev.Str("msg", o.err.Error())
		return
	}

	ev.Str("code", string(e.Code())).
		Str("kind", e.Kind().String()).
		Str("msg", e.Describe())

	if event, ok := e.Event(); ok {
		ev.Str("event", string(event))
	}
	if s, ok := e.SystemError(); ok {
		st, _ := e.OS()
		marshalSystem(ev, s, st)
	}
	if kinds := nwgerror.Kinds(o.err); len(kinds) > 1 {
		arr := zerolog.Arr()
		for _, k := range kinds {
			arr.Str(k.String())
		}
		ev.Array("kinds", arr)
	}
}

func marshalSystem(ev *zerolog.Event, s nwgerror.SystemError, st nwgerror.OSStatus) {
	ev.Str("system", string(s.Code())).
		Uint32("os_code", st.Code).
		Str("os_text", st.Text)
	if name := st.Name(); name != "" {
		ev.Str("os_name", name)
	}
}

// Error logs err at error level under the "error" key. Busy conditions
// (borrowed element, control in use) are logged at warn level since they
// clear on their own.
func Error(logger zerolog.Logger, err error, msg string) {
	if err == nil {
		return
	}
	ev := logger.Error()
	if nwgerror.IsBusy(err) {
		ev = logger.Warn()
	}
	ev.Object(zerolog.ErrorFieldName, Object(err)).Msg(msg)
}

// With returns a child logger that carries err on every entry.
func With(logger zerolog.Logger, err error) zerolog.Logger {
	if err == nil {
		return logger
	}
	return logger.With().Object(zerolog.ErrorFieldName, Object(err)).Logger()
}
