package ui

import "strings"

const (
	reset       = "\033[0m"
	bold        = "\033[1m"
	outlineGray = "\033[38;5;244m"
	beeYellow   = "\033[38;5;226m"
	honeyOrange = "\033[38;5;214m"
	mint        = "\033[38;5;121m"
	cobalt      = "\033[38;5;33m"
	deepIndigo  = "\033[38;5;61m"
	fuchsia     = "\033[38;5;177m"
	emberRed    = "\033[38;5;208m"
)

var gradient = []string{emberRed, honeyOrange, beeYellow, mint, cobalt, deepIndigo, fuchsia}

// Banner renders the topkill wordmark. Without color it is plain text.
func Banner(color bool) string {
	var b strings.Builder

	letters := [][]string{
		{"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{"██████╗  ", "██╔══██╗ ", "██████╔╝ ", "██╔═══╝  ", "██║      ", "╚═╝      "},
		{"██╗  ██╗", "██║ ██╔╝", "█████╔╝ ", "██╔═██╗ ", "██║  ██╗", "╚═╝  ╚═╝"},
		{"██╗", "██║", "██║", "██║", "██║", "╚═╝"},
		{"██╗     ", "██║     ", "██║     ", "██║     ", "███████╗", "╚══════╝"},
		{"██╗     ", "██║     ", "██║     ", "██║     ", "███████╗", "╚══════╝"},
	}
	rows := make([]string, len(letters[0]))
	for i, letter := range letters {
		for row := 0; row < len(letter); row++ {
			if color {
				rows[row] += gradient[i%len(gradient)]
			}
			rows[row] += letter[row] + " "
		}
	}
	for _, line := range rows {
		if color {
			b.WriteString(bold + line + reset + "\n")
		} else {
			b.WriteString(strings.TrimRight(line, " ") + "\n")
		}
	}

	b.WriteString("\n")
	if color {
		b.WriteString(bold + emberRed + "topkill" + reset + outlineGray + "  •  rank processes, stop the heavy ones" + reset + "\n\n")
	} else {
		b.WriteString("topkill  •  rank processes, stop the heavy ones\n\n")
	}
	return b.String()
}
