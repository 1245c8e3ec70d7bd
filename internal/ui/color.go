// Package ui renders the countdown in the terminal
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each color.
var DarkTheme bool

func pick(light, dark pterm.Color, a any) string {
	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string {
	return pick(pterm.FgGreen, pterm.FgLightGreen, a)
}

func Cyan(a any) string {
	return pick(pterm.FgCyan, pterm.FgLightCyan, a)
}

func Yellow(a any) string {
	return pick(pterm.FgYellow, pterm.FgLightYellow, a)
}

func Red(a any) string {
	return pick(pterm.FgRed, pterm.FgLightRed, a)
}

// Highlight emphasises a with the strongest contrast for the theme.
func Highlight(a any) string {
	return pick(pterm.FgBlack, pterm.FgLightWhite, a)
}
