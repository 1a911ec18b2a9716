package utils

import "fmt"

type Color string

const (
	ColorRed      Color = "31"
	ColorGreen    Color = "32"
	ColorYellow   Color = "33"
	ColorDarkGray Color = "90"
)

func Colorize(s string, color Color, enabled bool) string {
	if !enabled {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", color, s)
}
