package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// TestBannerPreview prints the banner so `go test ./pkg/ui -run TestBannerPreview` shows it.
func TestBannerPreview(t *testing.T) {
	fmt.Println(Banner(true))
}

func TestBannerIncludesWordmark(t *testing.T) {
	banner := Banner(true)
	if !strings.Contains(banner, "topkill") {
		t.Fatalf("banner missing topkill wordmark: %q", banner)
	}
	if !strings.Contains(banner, "rank processes") {
		t.Fatalf("banner missing tagline")
	}
	lines := strings.Split(strings.TrimSpace(banner), "\n")
	if len(lines) < 8 {
		t.Fatalf("expected multi-line banner, got %d lines", len(lines))
	}
}

func TestBannerUsesGradientColors(t *testing.T) {
	banner := Banner(true)
	colors := append([]string{bold}, gradient...)
	for _, color := range colors {
		if !strings.Contains(banner, color) {
			t.Fatalf("banner missing color code %q", color)
		}
	}
}

func TestBannerPlainHasNoEscapes(t *testing.T) {
	if strings.Contains(Banner(false), "\033[") {
		t.Fatalf("plain banner must not contain ANSI escapes")
	}
}

func TestMenuListsChoices(t *testing.T) {
	menu := Menu()
	for _, want := range []string{
		"1. Display processes sorted by CPU usage",
		"2. Display processes sorted by memory usage (Default)",
		"3. Stop a process",
		"4. Quit the application",
	} {
		if !strings.Contains(menu, want) {
			t.Fatalf("menu missing %q", want)
		}
	}
}

func TestClearScreenAndTerminalDetection(t *testing.T) {
	var buf bytes.Buffer
	ClearScreen(&buf)
	if buf.String() != "\033[H\033[2J" {
		t.Fatalf("unexpected clear sequence %q", buf.String())
	}
	if IsTerminal(&buf) {
		t.Fatalf("a buffer is never a terminal")
	}
}
