package maze

import (
	"errors"
	"testing"
)

const small = `-----
-*o -
-* *-
-----`

func TestParseDimensionsAndTiles(t *testing.T) {
	g, err := Parse(small)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if g.Rows() != 4 || g.Cols() != 5 {
		t.Fatalf("dimensions = %dx%d, expected 5x4", g.Cols(), g.Rows())
	}

	tests := []struct {
		x, y     int
		expected Tile
	}{
		{0, 0, Wall},
		{1, 1, Coin},
		{2, 1, PowerPellet},
		{3, 1, Blank},
		{2, 2, Blank},
		{3, 2, Coin},
		{4, 3, Wall},
	}

	for _, tc := range tests {
		got, err := g.TileAt(tc.x, tc.y)
		if err != nil {
			t.Fatalf("TileAt(%d, %d) failed: %v", tc.x, tc.y, err)
		}
		if got != tc.expected {
			t.Errorf("TileAt(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	g := MustParse(small + "\n")
	if g.String() != small {
		t.Errorf("String() = %q, expected %q", g.String(), small)
	}
}

func TestParseToleratesCRLF(t *testing.T) {
	g, err := Parse("---\r\n-*-\r\n---\r\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Errorf("dimensions = %dx%d, expected 3x3", g.Cols(), g.Rows())
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only newlines", "\n\n"},
		{"ragged rows", "---\n-*\n---"},
		{"unknown character", "---\n-#-\n---"},
		{"empty first row", "\n---"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			if !errors.Is(err, ErrMalformedGrid) {
				t.Errorf("Parse(%q) error = %v, expected ErrMalformedGrid", tc.text, err)
			}
		})
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	g := MustParse(small)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {5, 0}, {0, 4}} {
		if _, err := g.TileAt(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%d, %d) error = %v, expected ErrOutOfBounds", c.X, c.Y, err)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	if IsWalkable(Wall) {
		t.Error("walls must not be walkable")
	}
	for _, tile := range []Tile{Blank, Coin, PowerPellet} {
		if !IsWalkable(tile) {
			t.Errorf("%v should be walkable", tile)
		}
	}
}

func TestConsumeIsIdempotent(t *testing.T) {
	g := MustParse(small)

	if got := g.RemainingCollectibles(); got != 3 {
		t.Fatalf("RemainingCollectibles() = %d, expected 3", got)
	}

	tile, ok := g.Consume(1, 1)
	if !ok || tile != Coin {
		t.Fatalf("Consume(1, 1) = (%v, %v), expected (coin, true)", tile, ok)
	}
	if after, _ := g.TileAt(1, 1); after != Blank {
		t.Errorf("consumed cell should be blank, got %v", after)
	}

	before := g.String()
	if _, ok := g.Consume(1, 1); ok {
		t.Error("consuming a blank cell should report nothing consumed")
	}
	if g.String() != before {
		t.Error("consuming a blank cell must not change the grid")
	}

	if _, ok := g.Consume(0, 0); ok {
		t.Error("walls cannot be consumed")
	}
	if _, ok := g.Consume(99, 99); ok {
		t.Error("out of bounds cells cannot be consumed")
	}

	tile, ok = g.Consume(2, 1)
	if !ok || tile != PowerPellet {
		t.Errorf("Consume(2, 1) = (%v, %v), expected (power_pellet, true)", tile, ok)
	}
	if got := g.RemainingCollectibles(); got != 1 {
		t.Errorf("RemainingCollectibles() = %d, expected 1", got)
	}
}

func TestNearestWalkable(t *testing.T) {
	g := MustParse(small)

	c, ok := g.NearestWalkable(1, 1)
	if !ok || c != (Cell{1, 1}) {
		t.Errorf("NearestWalkable on open cell = %v, expected itself", c)
	}

	c, ok = g.NearestWalkable(0, 0)
	if !ok || c != (Cell{1, 1}) {
		t.Errorf("NearestWalkable(0, 0) = %v, expected (1, 1)", c)
	}

	solid := MustParse("--\n--")
	if _, ok := solid.NearestWalkable(0, 0); ok {
		t.Error("all-wall grid has no walkable cell")
	}
}

func TestClone(t *testing.T) {
	g := MustParse(small)
	c := g.Clone()
	c.Consume(1, 1)

	if tile, _ := g.TileAt(1, 1); tile != Coin {
		t.Error("mutating a clone must not affect the original")
	}
}
