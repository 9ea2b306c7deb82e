/*
File    : lambda/driver/driver_test.go
Author  : akashmaji946
*/
package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestRunReaderEvaluatesExpression(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`(\x.x) a`), "-", true)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "a\n\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunReaderPrintsStatsUnlessQuiet(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`(\x.x) a`), "-", false)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "a\n\n", out.String())
	assert.Contains(t, errOut.String(), "Stats:")
}

func TestRunReaderPrintsDecodedChurchNumeral(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`\f.\x.f (f x)`), "-", false)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, errOut.String(), "Church num!: 2")
}

func TestRunReaderOnlyDefinitionsReportsNoMain(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`Id = \x.x;`), "-", false)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "1 definition")
}

func TestRunReaderLexError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`a $ b`), "-", false)
	assert.Equal(t, ExitLexError, code)
	assert.Contains(t, errOut.String(), "LexError")
}

func TestRunReaderParseError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`(a`), "-", false)
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, errOut.String(), "ParseError")
}

func TestRunReaderEvalError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunReader(&out, &errOut, strings.NewReader(`(\x.x x)(\x.x x)`), "-", false)
	assert.Equal(t, ExitEvalError, code)
}

func TestRunFileMissing(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunFile(&out, &errOut, "/nonexistent/path/to/nowhere.lc", false)
	assert.Equal(t, ExitIOError, code)
}
