package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestWithContextFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	t.Cleanup(func() { Set(zerolog.Nop()) })

	WithContext(context.Background()).Info().Msg("global")
	assert.Contains(t, buf.String(), "global")

	buf.Reset()
	scoped := WithSessionID(WithRequestID("req-1"), "sess-1")
	ctx := NewContext(context.Background(), &scoped)
	WithContext(ctx).Info().Msg("scoped")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"session_id":"sess-1"`)
}

func TestSlotOpLogsFailuresAtWarn(t *testing.T) {
	var buf bytes.Buffer
	Set(zerolog.New(&buf).Level(zerolog.WarnLevel))
	t.Cleanup(func() { Set(zerolog.Nop()) })

	SlotOp(context.Background(), "get", "dunkstore-cart", time.Millisecond, nil)
	assert.Empty(t, buf.String())

	SlotOp(context.Background(), "set", "dunkstore-cart", time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), `"slot":"dunkstore-cart"`)
	assert.Contains(t, buf.String(), "boom")
}
