// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/preview"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

var generateCmd = &cobra.Command{
	Use:   "generate [color]",
	Short: "Generate a theme from a base color",
	Long: `Generate the five palettes for a base color and print them.

The color is read in the --in format. Use --preset instead of a color to
start from one of the built-in base colors.`,
	Example: `  autotheme generate "#a855f7"
  autotheme generate "rgba(168, 85, 247, 1)" --in rgb --out oklch --output json
  autotheme generate --preset teal --output css --dark`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		theme, err := themeFromFlags(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		tw, err := writerFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := tw.write(os.Stdout, theme); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode [color]",
	Short: "Generate a theme and print its encoded form",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		theme, err := themeFromFlags(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts, err := codecOptionsFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		text, err := codec.Serialize(theme, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding theme: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode an encoded theme",
	Long:  "Decode an encoded theme given as an argument or on stdin and print it.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		text, err := inputText(args, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		escapeFlag, _ := cmd.Flags().GetString("escape")
		versionFlag, _ := cmd.Flags().GetString("version")
		if escapeFlag == "" {
			escapeFlag = config.GetString("codec.escape")
		}
		// Decoding detects the version unless one is forced
		opts, err := codec.ParseOptions(escapeFlag, versionFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		doc, err := codec.Deserialize(text, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding theme: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("format")
		if err := writeDecoded(os.Stdout, doc, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a single color between formats",
	Example: `  autotheme convert "#a855f7" --to oklch
  autotheme convert "oklch(62.68% 0.2325 305.00deg / 1)" --from oklch --to rgb`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")

		from, err := color.ParseFormat(fromFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		to, err := color.ParseFormat(toFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		c, ok := color.TryParse(args[0], from)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: could not parse %q as %s, using fallback\n", args[0], from)
		}
		fmt.Println(color.Render(c, to))
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [color]",
	Short: "Show a theme as terminal swatches",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		theme, err := themeFromFlags(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(preview.Render(theme))
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in base colors",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range themes.ListPresets() {
			fmt.Printf("%-12s %s\n", p.Name, p.Base)
		}
	},
}

// addThemeFlags registers the generation flags. Empty values fall back to
// the theme.* config keys.
func addThemeFlags(cmd *cobra.Command) {
	cmd.Flags().String("in", "", "input color format (hex, rgb, hsl, oklab, oklch)")
	cmd.Flags().String("out", "", "output color format (hex, rgb, hsl, oklab, oklch)")
	cmd.Flags().String("min", "", "lightest shade to generate (50..950)")
	cmd.Flags().String("max", "", "darkest shade to generate (50..950)")
	cmd.Flags().String("preset", "", "use a built-in base color instead of an argument")
}

// addCodecFlags registers the encoding flags. Empty values fall back to the
// codec.* config keys.
func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().String("escape", "", "field separator character (default from codec.escape)")
	cmd.Flags().String("version", "", "encoding version: legacy or 2 (default from codec.version)")
}

func flagOrConfig(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return config.GetString(key)
}

// baseFromFlags resolves the base color from a color argument or --preset,
// along with the generation options
func baseFromFlags(cmd *cobra.Command, args []string) (string, themes.Options, error) {
	opts, err := themes.ParseOptions(
		flagOrConfig(cmd, "in", "theme.input_format"),
		flagOrConfig(cmd, "out", "theme.output_format"),
		flagOrConfig(cmd, "min", "theme.min_shade"),
		flagOrConfig(cmd, "max", "theme.max_shade"),
	)
	if err != nil {
		return "", opts, err
	}

	presetName, _ := cmd.Flags().GetString("preset")
	switch {
	case presetName != "" && len(args) > 0:
		return "", opts, errors.New("give either a color or --preset, not both")
	case presetName != "":
		preset := themes.GetPreset(presetName)
		if preset == nil {
			return "", opts, fmt.Errorf("unknown preset %q (see autotheme presets)", presetName)
		}
		opts.Input = color.Hex
		return preset.Base, opts, nil
	case len(args) == 0:
		return "", opts, errors.New("a base color or --preset is required")
	}

	if _, ok := color.TryParse(args[0], opts.Input); !ok {
		log.Warn().Str("color", args[0]).Str("format", opts.Input.String()).Msg("Unparseable color, using neutral gray")
	}
	return args[0], opts, nil
}

// themeFromFlags generates the theme selected by a color argument or --preset
func themeFromFlags(cmd *cobra.Command, args []string) (*themes.Theme, error) {
	base, opts, err := baseFromFlags(cmd, args)
	if err != nil {
		return nil, err
	}
	return themes.GenerateWithOptions(base, opts), nil
}

func codecOptionsFromFlags(cmd *cobra.Command) ([]codec.Option, error) {
	return codec.ParseOptions(
		flagOrConfig(cmd, "escape", "codec.escape"),
		flagOrConfig(cmd, "version", "codec.version"),
	)
}

func writerFromFlags(cmd *cobra.Command) (themeWriter, error) {
	format, _ := cmd.Flags().GetString("output")
	dark, _ := cmd.Flags().GetBool("dark")
	opts, err := codecOptionsFromFlags(cmd)
	if err != nil {
		return themeWriter{}, err
	}
	return themeWriter{format: format, dark: dark, codecOpt: opts}, nil
}

// inputText returns the argument, or all of r when there is none
func inputText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", codec.ErrEmptyInput
	}
	return text, nil
}

// writeDecoded prints a decoded document, rebuilt into a theme when it is one
func writeDecoded(w io.Writer, doc *codec.Document, format string) error {
	theme, themeErr := themes.FromDocument(doc)
	switch format {
	case "", outputText:
		if themeErr != nil {
			return fmt.Errorf("decoded text is not a theme: %w", themeErr)
		}
		fmt.Fprintf(w, "version\t%s\n", doc.Version)
		return writeTable(w, theme)
	case outputJSON:
		if themeErr != nil {
			return writeJSON(w, doc)
		}
		return writeJSON(w, theme)
	case outputYAML:
		if themeErr != nil {
			return writeYAML(w, doc)
		}
		return writeYAML(w, theme)
	}
	return fmt.Errorf("unknown format %q (must be text, json or yaml)", format)
}

func init() {
	addThemeFlags(generateCmd)
	addCodecFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", outputText, "output: text, json, yaml, css, encoded or preview")
	generateCmd.Flags().Bool("dark", false, "use the dark scheme for css output")

	addThemeFlags(encodeCmd)
	addCodecFlags(encodeCmd)

	addCodecFlags(decodeCmd)
	decodeCmd.Flags().StringP("format", "f", outputText, "output: text, json or yaml")

	convertCmd.Flags().String("from", "hex", "input color format")
	convertCmd.Flags().String("to", "oklch", "output color format")

	addThemeFlags(previewCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(presetsCmd)
}
