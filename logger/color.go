// Package logger carries the colored log helpers shared by the CLI commands.
package logger

import "github.com/fatih/color"

var (
	Cyan    = color.New(color.FgCyan)
	Magenta = color.New(color.FgMagenta)
	Yellow  = color.New(color.FgHiYellow)
	Green   = color.New(color.FgHiGreen)
	Blue    = color.New(color.FgBlue)
	Red     = color.New(color.FgRed)
)

// CLog returns str wrapped in the ANSI escapes for c.
func CLog(c *color.Color, str string) string {
	return c.Sprint(str)
}
