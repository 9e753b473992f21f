// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/preview"
	"github.com/thatcatcamp/autotheme/internal/themes"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output
const (
	outputText    = "text"
	outputJSON    = "json"
	outputYAML    = "yaml"
	outputCSS     = "css"
	outputEncoded = "encoded"
	outputPreview = "preview"
)

// themeWriter renders a theme for one --output value
type themeWriter struct {
	format   string
	dark     bool
	codecOpt []codec.Option
}

func (tw themeWriter) write(w io.Writer, theme *themes.Theme) error {
	switch tw.format {
	case "", outputText:
		return writeTable(w, theme)
	case outputJSON:
		return writeJSON(w, theme)
	case outputYAML:
		return writeYAML(w, theme)
	case outputCSS:
		_, err := io.WriteString(w, themes.ThemeCSS(theme, tw.dark))
		return err
	case outputEncoded:
		text, err := codec.Serialize(theme, tw.codecOpt...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	case outputPreview:
		_, err := io.WriteString(w, preview.Render(theme))
		return err
	}
	return fmt.Errorf("unknown output %q (must be text, json, yaml, css, encoded or preview)", tw.format)
}

// writeTable prints one row per shade and one column per role
func writeTable(w io.Writer, theme *themes.Theme) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "base\t%s\t(%s)\n\n", theme.BaseColor(), theme.ColorType())

	fmt.Fprint(tw, "SHADE")
	for _, r := range themes.Roles() {
		fmt.Fprintf(tw, "\t%s", r)
	}
	fmt.Fprintln(tw)

	for _, s := range theme.Palette(themes.Primary).Shades() {
		fmt.Fprint(tw, s)
		for _, r := range themes.Roles() {
			c, _ := theme.Color(r, s)
			fmt.Fprintf(tw, "\t%s", c)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
