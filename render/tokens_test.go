package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/render"
)

func TestTokens(t *testing.T) {
	tokens := shparse.Tokenize(`ls -la | grep "a b" > out.txt`)

	var buf bytes.Buffer
	require.NoError(t, render.Tokens(&buf, tokens))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(tokens)+1)

	assert.Equal(t, []string{"POS", "TYPE", "LITERAL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "COMMAND", "ls"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"3", "OPTION", "-la"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"7", "PIPE", "|"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"9", "COMMAND", "grep"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"14", "STRING", "a", "b"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"20", "REDIRECT_OUT", ">"}, strings.Fields(lines[6]))
	assert.Equal(t, []string{"22", "STRING", "out.txt"}, strings.Fields(lines[7]))
}

func TestTokensEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Tokens(&buf, nil))
	assert.Equal(t, "POS", strings.Fields(buf.String())[0])
}
