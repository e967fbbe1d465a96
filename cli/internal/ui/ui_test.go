package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetVerbose(false)
		SetJSONOutput(false)
	})
	return &out, &errOut
}

func TestOutput_Streams(t *testing.T) {
	out, errOut := capture(t)

	Info("wrote %s", "doxygen.config")
	Warning("quiet")
	Success("done")
	Error("failed: %d", 1)

	assert.Contains(t, out.String(), "INFO:")
	assert.Contains(t, out.String(), "wrote doxygen.config")
	assert.Contains(t, out.String(), "WARN:")
	assert.Contains(t, out.String(), "done")
	assert.NotContains(t, out.String(), "failed")
	assert.Contains(t, errOut.String(), "ERROR:")
	assert.Contains(t, errOut.String(), "failed: 1")
}

func TestOutput_DebugNeedsVerbose(t *testing.T) {
	out, _ := capture(t)

	Debug("hidden")
	assert.Empty(t, out.String())

	SetVerbose(true)
	Debug("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestOutput_JSON(t *testing.T) {
	out, _ := capture(t)
	SetJSONOutput(true)
	require.True(t, IsJSON())

	Heading("Options")
	Result(map[string]int{"options": 200}, "listed %d options", 200)

	var msg struct {
		Level string         `json:"level"`
		Text  string         `json:"text"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &msg))
	assert.Equal(t, "success", msg.Level)
	assert.Equal(t, "listed 200 options", msg.Text)
	assert.Equal(t, 200, msg.Data["options"])
}

func TestStep(t *testing.T) {
	out, _ := capture(t)

	Step(2, 3, "running %s", "doxygen")
	assert.True(t, strings.HasPrefix(out.String(), "  "))
	assert.Contains(t, out.String(), "[2/3]")
	assert.Contains(t, out.String(), "running doxygen")
}
