// log.go — log/slog integration.
package nwgerror

import "log/slog"

// LogValue renders e as a slog group so handlers emit structured fields
// instead of the multi-line description.
func (e Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", string(e.Code())),
		slog.String("kind", e.kind.String()),
		slog.String("msg", e.Describe()),
	}
	switch e.kind {
	case KindEventNotSupported:
		attrs = append(attrs, slog.String("event", string(e.event)))
	case KindSystem:
		attrs = append(attrs,
			slog.String("system", string(e.sys.Code())),
			slog.Uint64("os_code", uint64(e.os.Code)),
			slog.String("os_text", e.os.Text),
		)
	}
	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = Error{}
