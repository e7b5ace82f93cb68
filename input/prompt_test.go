package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskFloatRetries(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n1,5\n42.5\n"), &out)

	v, err := p.AskFloat("Balance: ")
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)
	assert.Equal(t, 4, strings.Count(out.String(), "Balance: "))
	assert.Equal(t, 3, strings.Count(out.String(), Retry))
}

func TestAskFloatEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("nope\n"), &out)

	_, err := p.AskFloat("Balance: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  eurusd  \n"), &out)

	s, err := p.AskLine("Pair: ")
	require.NoError(t, err)
	assert.Equal(t, "eurusd", s)
	assert.Equal(t, "Pair: ", out.String())

	_, err = p.AskLine("Pair: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskFloatDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nx\n7\n"), &out)

	v, err := p.AskFloatDefault("Risk %: ", 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Contains(t, out.String(), "Risk %: [1] ")

	v, err = p.AskFloatDefault("Risk %: ", 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Contains(t, out.String(), Retry)
}
