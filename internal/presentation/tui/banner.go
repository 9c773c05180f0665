package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown by long-running commands.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient
	s1 := termenv.String(`   ___ _ ____   __`).Foreground(p.Color("#34d399"))
	s2 := termenv.String(`  / _ \ '_ \ \ / /`).Foreground(p.Color("#2dd4bf"))
	s3 := termenv.String(` |  __/ | | \ V / `).Foreground(p.Color("#22d3ee"))
	s4 := termenv.String(`  \___|_| |_|\_/  `).Foreground(p.Color("#38bdf8"))
	tag := termenv.String(fmt.Sprintf(" env-config-validator %s", version)).Faint()

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(tag)
	fmt.Println()
}
