package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "abc-123")

	err := errors.New("upstream down")
	Time(ctx, "conditions.GetWeather")(&err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "abc-123", line["req_id"])
	assert.Equal(t, "conditions.GetWeather", line["op"])
	assert.Equal(t, "upstream down", line["error"])
	assert.Contains(t, line, "dur_ms")
}

func TestTimeSuccessIsDebug(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "catalog.list")(&err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "", line["req_id"])
}
