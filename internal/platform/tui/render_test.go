package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/catchit/internal/core"
)

func TestRenderScreenPlainRunsAreUnstyled(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "score 40", core.ColorDefault)
	s.DrawBox(core.Rect{X: 0, Y: 1, W: 12, H: 2}, core.ColorDefault)

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("plain screen rendered as:\n%q\nexpected:\n%q", got, s.String())
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(prev)

	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "score", core.ColorDefault)
	s.DrawText(6, 0, "HUNT", core.ColorRed)
	s.DrawText(0, 1, "ok", core.ColorDarkGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "score ") {
		t.Errorf("default run should be written raw, got %q", lines[0])
	}
	if !strings.Contains(lines[0], "\x1b[") || !strings.Contains(lines[0], "HUNT") {
		t.Errorf("colored run should be styled, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "  ") {
		t.Errorf("trailing default run should be written raw, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\x1b[") || !strings.HasSuffix(lines[1], strings.Repeat(" ", 10)) {
		t.Errorf("unexpected second line %q", lines[1])
	}
}
