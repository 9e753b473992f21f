// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

func testTheme() *themes.Theme {
	return themes.Generate("#a855f7", color.Hex, color.Hex, themes.Shade400, themes.Shade600)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, testTheme()))

	out := buf.String()
	assert.Contains(t, out, "#a855f7")
	assert.Contains(t, out, "SHADE")
	assert.Contains(t, out, "neutral")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// base, blank, header and three shades
	assert.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[3], "400"))
}

func TestThemeWriterFormats(t *testing.T) {
	theme := testTheme()
	cases := map[string]string{
		outputText:    "SHADE",
		outputJSON:    `"colorType": "hex"`,
		outputYAML:    "colorType: hex",
		outputCSS:     "--color-primary-500",
		outputEncoded: "version:2|colorType:hex|",
		outputPreview: "primary",
	}
	for format, want := range cases {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			tw := themeWriter{format: format}
			require.NoError(t, tw.write(&buf, theme))
			assert.Contains(t, buf.String(), want)
		})
	}
}

func TestThemeWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := themeWriter{format: "xml"}.write(&buf, testTheme())
	assert.Error(t, err)
}

func TestThemeWriterLegacyEncoding(t *testing.T) {
	var buf bytes.Buffer
	tw := themeWriter{format: outputEncoded, codecOpt: []codec.Option{codec.WithVersion(codec.Legacy), codec.WithEscape(';')}}
	require.NoError(t, tw.write(&buf, testTheme()))
	assert.True(t, strings.HasPrefix(buf.String(), "colorType:hex;baseColor:#a855f7;;"))
}

func TestWriteDecoded(t *testing.T) {
	text, err := codec.Serialize(testTheme())
	require.NoError(t, err)
	doc, err := codec.Deserialize(text)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeDecoded(&buf, doc, outputText))
	assert.Contains(t, buf.String(), "version\t2")
	assert.Contains(t, buf.String(), "#a855f7")

	buf.Reset()
	require.NoError(t, writeDecoded(&buf, doc, outputJSON))
	assert.Contains(t, buf.String(), `"baseColor": "#a855f7"`)

	assert.Error(t, writeDecoded(&buf, doc, "toml"))
}

func TestWriteDecodedNonTheme(t *testing.T) {
	doc, err := codec.Deserialize("name:demo|")
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, writeDecoded(&buf, doc, outputText))

	buf.Reset()
	require.NoError(t, writeDecoded(&buf, doc, outputYAML))
	assert.Contains(t, buf.String(), "name: demo")
}

func TestInputText(t *testing.T) {
	text, err := inputText([]string{"  abc \n"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "abc", text)

	text, err = inputText(nil, strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)

	_, err = inputText(nil, strings.NewReader("  \n"))
	assert.ErrorIs(t, err, codec.ErrEmptyInput)
}

func newFlagCommand(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addThemeFlags(cmd)
	addCodecFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(flags))
	return cmd
}

func TestBaseFromFlags(t *testing.T) {
	cmd := newFlagCommand(t, "--in", "rgb", "--out", "oklch", "--min", "100", "--max", "800")
	base, opts, err := baseFromFlags(cmd, []string{"rgb(168, 85, 247)"})
	require.NoError(t, err)
	assert.Equal(t, "rgb(168, 85, 247)", base)
	assert.Equal(t, color.RGB, opts.Input)
	assert.Equal(t, color.OKLCh, opts.Output)
	assert.Equal(t, themes.Shade100, opts.Min)
	assert.Equal(t, themes.Shade800, opts.Max)
}

func TestBaseFromFlagsPreset(t *testing.T) {
	cmd := newFlagCommand(t, "--preset", "teal", "--in", "oklch")
	base, opts, err := baseFromFlags(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, themes.GetPreset("teal").Base, base)
	assert.Equal(t, color.Hex, opts.Input)
}

func TestBaseFromFlagsErrors(t *testing.T) {
	_, _, err := baseFromFlags(newFlagCommand(t), nil)
	assert.Error(t, err)

	_, _, err = baseFromFlags(newFlagCommand(t, "--preset", "teal"), []string{"#fff"})
	assert.Error(t, err)

	_, _, err = baseFromFlags(newFlagCommand(t, "--preset", "nope"), nil)
	assert.Error(t, err)

	_, _, err = baseFromFlags(newFlagCommand(t, "--out", "cmyk"), []string{"#fff"})
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "encode", "decode", "convert", "preview", "presets", "theme", "token", "server", "config"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

var (
	quotedArg  = regexp.MustCompile(`"([^"]*)"`)
	formatFlag = regexp.MustCompile(`--(?:in|from) (\w+)`)
)

func walkCommands(c *cobra.Command, fn func(*cobra.Command)) {
	fn(c)
	for _, sub := range c.Commands() {
		walkCommands(sub, fn)
	}
}

// Colors quoted in help examples must parse in the format the line names
func TestExampleColorsParse(t *testing.T) {
	checked := 0
	walkCommands(rootCmd, func(c *cobra.Command) {
		for _, line := range strings.Split(c.Example, "\n") {
			m := quotedArg.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			format := color.Hex
			if f := formatFlag.FindStringSubmatch(line); f != nil {
				var err error
				format, err = color.ParseFormat(f[1])
				require.NoError(t, err, "%s: %s", c.CommandPath(), line)
			}
			_, ok := color.TryParse(m[1], format)
			assert.True(t, ok, "%s: %q does not parse as %s", c.CommandPath(), m[1], format)
			checked++
		}
	})
	assert.GreaterOrEqual(t, checked, 5)
}
