// codes.go — stable, machine-readable codes for toolkit and system failures.
//
// Intent:
//   - Give every Kind and every SystemError a snake_case identifier that
//     survives serialization (logs, JSON, oops bridging, the CLI).
//   - Keep the mapping total: unknown tags map to CodeUnknown.
package nwgerror

// Code classifies errors into machine-readable categories.
type Code string

// Toolkit codes, one per Kind.
const (
	CodeKeyExists                 Code = "key_exists"
	CodeKeyNotFound               Code = "key_not_found"
	CodeBadType                   Code = "bad_type"
	CodeBorrowError               Code = "borrow_error"
	CodeEventNotSupported         Code = "event_not_supported"
	CodeControlRequired           Code = "control_required"
	CodeControlOrResourceRequired Code = "control_or_resource_required"
	CodeControlInUse              Code = "control_in_use"
	CodeUnimplemented             Code = "unimplemented"
	CodeSystem                    Code = "system"
)

// System codes, one per SystemError.
const (
	CodeSystemClassCreation Code = "system_class_creation"
	CodeWindowCreationFail  Code = "window_creation_fail"
	CodeUiCreation          Code = "ui_creation"
)

// CodeUnknown is reported for the zero value and undeclared tags.
const CodeUnknown Code = "unknown"

var kindCodes = map[Kind]Code{
	KindKeyExists:                 CodeKeyExists,
	KindKeyNotFound:               CodeKeyNotFound,
	KindBadType:                   CodeBadType,
	KindBorrowError:               CodeBorrowError,
	KindEventNotSupported:         CodeEventNotSupported,
	KindControlRequired:           CodeControlRequired,
	KindControlOrResourceRequired: CodeControlOrResourceRequired,
	KindControlInUse:              CodeControlInUse,
	KindUnimplemented:             CodeUnimplemented,
	KindSystem:                    CodeSystem,
}

var systemCodes = map[SystemError]Code{
	SystemClassCreation: CodeSystemClassCreation,
	WindowCreationFail:  CodeWindowCreationFail,
	UiCreation:          CodeUiCreation,
}

// allBuiltinCodes is the ordered set of codes the package ships with.
// Order is stable to minimize churn in docs and CLI output.
var allBuiltinCodes = []Code{
	CodeKeyExists,
	CodeKeyNotFound,
	CodeBadType,
	CodeBorrowError,
	CodeEventNotSupported,
	CodeControlRequired,
	CodeControlOrResourceRequired,
	CodeControlInUse,
	CodeUnimplemented,
	CodeSystem,

	CodeSystemClassCreation,
	CodeWindowCreationFail,
	CodeUiCreation,
}

// AllCodes returns a copy of the built-in codes in a stable order.
func AllCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the package's codes.
func (c Code) IsBuiltin() bool {
	for _, b := range allBuiltinCodes {
		if b == c {
			return true
		}
	}
	return false
}

// Code returns the toolkit code for k.
func (k Kind) Code() Code {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return CodeUnknown
}

// Code returns the code for the system tag.
func (s SystemError) Code() Code {
	if c, ok := systemCodes[s]; ok {
		return c
	}
	return CodeUnknown
}

// Code returns the toolkit code for e. System errors report CodeSystem; use
// SystemError().Code() for the nested category.
func (e Error) Code() Code { return e.kind.Code() }

// KindForCode maps a toolkit code back to its Kind.
func KindForCode(c Code) (Kind, bool) {
	for k, kc := range kindCodes {
		if kc == c {
			return k, true
		}
	}
	return 0, false
}

// SystemForCode maps a system code back to its SystemError.
func SystemForCode(c Code) (SystemError, bool) {
	for s, sc := range systemCodes {
		if sc == c {
			return s, true
		}
	}
	return 0, false
}
