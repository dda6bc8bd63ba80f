package zlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nwgerror "github.com/nwg-io/nwg-error"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "line: %s", buf.String())
	return m
}

func TestError_SystemFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	err := nwgerror.SystemWith(nwgerror.WindowCreationFail, nwgerror.StaticProbe(5, "Access is denied"))

	Error(logger, err, "create window failed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "create window failed", entry["message"])

	obj, ok := entry[zerolog.ErrorFieldName].(map[string]any)
	require.True(t, ok, "error should be an object: %v", entry)
	assert.Equal(t, "system", obj["code"])
	assert.Equal(t, "System", obj["kind"])
	assert.Equal(t, "window_creation_fail", obj["system"])
	assert.EqualValues(t, 5, obj["os_code"])
	assert.Equal(t, "Access is denied", obj["os_text"])
	assert.Equal(t, err.Describe(), obj["msg"])
}

func TestError_EventField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Error(zerolog.New(&buf), fmt.Errorf("bind: %w", nwgerror.EventNotSupported("Click")), "bind failed")

	obj := decodeLine(t, &buf)[zerolog.ErrorFieldName].(map[string]any)
	assert.Equal(t, "event_not_supported", obj["code"])
	assert.Equal(t, "Click", obj["event"])
	assert.NotContains(t, obj, "system")
}

func TestError_BusyLogsAtWarn(t *testing.T) {
	t.Parallel()

	for _, err := range []error{nwgerror.ErrBorrowError, nwgerror.ErrControlInUse} {
		var buf bytes.Buffer
		Error(zerolog.New(&buf), err, "busy")
		assert.Equal(t, "warn", decodeLine(t, &buf)["level"], "err=%v", err)
	}
}

func TestError_NilIsNoop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Error(zerolog.New(&buf), nil, "nothing")
	assert.Zero(t, buf.Len())
}

func TestError_ForeignError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Error(zerolog.New(&buf), errors.New("boom"), "failed")

	obj := decodeLine(t, &buf)[zerolog.ErrorFieldName].(map[string]any)
	assert.Equal(t, map[string]any{"msg": "boom"}, obj)
}

func TestError_JoinedKinds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := nwgerror.Join(nwgerror.ErrKeyNotFound, nwgerror.ErrBadType)
	Error(zerolog.New(&buf), err, "batch failed")

	obj := decodeLine(t, &buf)[zerolog.ErrorFieldName].(map[string]any)
	assert.Equal(t, "key_not_found", obj["code"])
	assert.Equal(t, []any{"KeyNotFound", "BadType"}, obj["kinds"])
}

func TestWith_CarriesError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := With(zerolog.New(&buf), nwgerror.ErrUnimplemented)
	logger.Info().Msg("first")

	obj := decodeLine(t, &buf)[zerolog.ErrorFieldName].(map[string]any)
	assert.Equal(t, "unimplemented", obj["code"])

	base := zerolog.New(&buf)
	assert.Equal(t, base, With(base, nil))
}
