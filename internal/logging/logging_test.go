package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "json", &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("records", 3).Info("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["records"])
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "invalid_level=chatty")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("dropped")
	assert.NotNil(t, log)
}
