package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const rule = "--------------------------------------------------------------------"

// Menu returns the main menu text.
func Menu() string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("Welcome to the process management application!\n")
	b.WriteString(rule + "\n")
	b.WriteString("Choose an option:\n")
	b.WriteString("-----------------\n")
	b.WriteString("1. Display processes sorted by CPU usage\n")
	b.WriteString("2. Display processes sorted by memory usage (Default)\n")
	b.WriteString("3. Stop a process\n")
	b.WriteString("4. Quit the application\n")
	b.WriteString("\n")
	return b.String()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ClearScreen moves the cursor home and clears w.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
