package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanel_AlignsColoredLines(t *testing.T) {
	SetColorForcing(true, false)
	SetTheme("classic")
	t.Cleanup(func() { SetColorForcing(false, false); SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{C(fgGreen, "ok"), "longer"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "┌────────┐", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "ok"+reset+"     │"), lines[1])
	assert.Equal(t, "│ longer │", lines[2])
	assert.Equal(t, "└────────┘", lines[3])
}

func TestMonoTheme_DisablesColor(t *testing.T) {
	SetColorForcing(true, false)
	SetTheme("mono")
	t.Cleanup(func() { SetColorForcing(false, false); SetTheme("classic") })

	var buf bytes.Buffer
	Fail(&buf, "nope")
	assert.Equal(t, "✖ nope\n", buf.String())

	buf.Reset()
	Panel(&buf, []string{"x"})
	assert.Equal(t, "+---+\n| x |\n+---+\n", buf.String())
}
