// json.go — JSON export for Error and SystemError.
package nwgerror

import "encoding/json"

// errorJSON is the wire shape shared by the CLI, logs and API adapters.
type errorJSON struct {
	Code    Code      `json:"code"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	Event   EventKind `json:"event,omitempty"`
	System  *sysJSON  `json:"system,omitempty"`
}

type sysJSON struct {
	Code     Code   `json:"code"`
	Kind     string `json:"kind"`
	OSCode   uint32 `json:"os_code"`
	OSText   string `json:"os_text"`
	OSName   string `json:"os_name,omitempty"`
	Sentence string `json:"sentence"`
}

func newSysJSON(s SystemError, st OSStatus) *sysJSON {
	return &sysJSON{
		Code:     s.Code(),
		Kind:     s.String(),
		OSCode:   st.Code,
		OSText:   st.Text,
		OSName:   st.Name(),
		Sentence: s.Sentence(),
	}
}

// MarshalJSON renders e as an object with its code, kind and message, plus
// the event or the system/OS details when present.
func (e Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		Code:    e.Code(),
		Kind:    e.kind.String(),
		Message: e.Describe(),
	}
	switch e.kind {
	case KindEventNotSupported:
		out.Event = e.event
	case KindSystem:
		out.System = newSysJSON(e.sys, e.os)
	}
	return json.Marshal(out)
}

// MarshalJSON renders s with the status reported by the current probe.
func (s SystemError) MarshalJSON() ([]byte, error) {
	return json.Marshal(newSysJSON(s, Capture(CurrentProbe())))
}
