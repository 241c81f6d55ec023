package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chad-snake/internal/font"
)

var flagGlyph string

var fontCmd = &cobra.Command{
	Use:   "font <text>",
	Short: "Print text in the bitmap font",
	Long: `Prints text using the same 5x5 glyphs the game draws with.
Letters are upper-cased; characters without a glyph print as spaces.

Examples:
  chadsnake font "game over"
  chadsnake font --glyph @ 12:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFont,
}

func init() {
	fontCmd.Flags().StringVar(&flagGlyph, "glyph", "█", "Character used for lit pixels")
}

func runFont(cmd *cobra.Command, args []string) error {
	on := []rune(flagGlyph)
	if len(on) != 1 {
		return fmt.Errorf("--glyph must be a single character, got %q", flagGlyph)
	}

	text := strings.Join(args, " ")
	for _, line := range font.Banner(text, on[0], ' ') {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(line, " "))
	}
	return nil
}
