package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "SCORE 10", core.ColorBrightWhite)
	s.DrawTextColored(0, 1, "██", core.ColorBlue)
	s.DrawTextColored(2, 1, "ᗧ", core.ColorBrightYellow)
	s.DrawTextColored(4, 1, "ᗣ", core.ColorPink)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"SCORE 10", "██", "ᗧ", "ᗣ"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lacks %q", want)
		}
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestSummaryModel(t *testing.T) {
	rounds := []storage.Round{
		{Maze: "classic", Outcome: storage.OutcomeLost, Score: 340, Seconds: 51},
		{Maze: "open", Outcome: storage.OutcomeWon, Score: 4200, Bonus: 3900, Lives: 2, Seconds: 44},
	}
	m := NewSummaryModel(rounds, storage.Stats{Rounds: 2, Wins: 1, BestScore: 4200}, 80, 24)

	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("table has %d rows, expected 2", got)
	}
	view := m.View()
	for _, want := range []string{"open", "4200", "2 rounds, 1 won, best score 4200"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() lacks %q", want)
		}
	}

	_, cmd := m.Update(runes("q"))
	if !isQuit(cmd) {
		t.Error("q should close the summary")
	}
}

func TestRunSummaryWithoutRounds(t *testing.T) {
	if err := RunSummary(nil, 80, 24); err != nil {
		t.Errorf("RunSummary(nil) = %v", err)
	}

	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	// An empty log shows nothing and returns at once.
	if err := RunSummary(store, 80, 24); err != nil {
		t.Errorf("RunSummary(empty) = %v", err)
	}
}
