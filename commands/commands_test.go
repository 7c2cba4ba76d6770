package commands

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecExactMatch(t *testing.T) {
	c := NewCommands(nil)
	var ran []string
	c.Register("cursor.left", func() { ran = append(ran, "cursor.left") })
	c.Register("cursor.left.cell", func() { ran = append(ran, "cursor.left.cell") })

	assert.True(t, c.Exec("cursor.left"))
	assert.Equal(t, []string{"cursor.left"}, ran)
}

func TestExecLongestPrefix(t *testing.T) {
	c := NewCommands(nil)
	var ran string
	c.Register("cursor.toggle", func() { ran = "cursor.toggle" })
	c.Register("cursor.toggle.shape", func() { ran = "cursor.toggle.shape" })

	assert.True(t, c.Exec("cursor.tog"))
	assert.Equal(t, "cursor.toggle.shape", ran)
}

func TestExecUnknownLogs(t *testing.T) {
	var buf bytes.Buffer
	c := NewCommands(log.New(&buf, "", 0))
	c.Register("quit", func() {})

	assert.False(t, c.Exec("save"))
	assert.Contains(t, buf.String(), "Command save not found")
}

func TestNamesSorted(t *testing.T) {
	c := NewCommands(nil)
	c.Register("b", func() {})
	c.Register("a", func() {})
	assert.Equal(t, []string{"a", "b"}, c.Names())
}
