package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Red, b.Turn(), "Red should move first")
	require.Equal(t, Ongoing, b.Evaluate(), "Empty board should be ongoing")
	require.Len(t, b.LegalColumns(), Columns, "All columns should be playable")
}

func TestDrop(t *testing.T) {
	t.Run("stacks discs from the bottom", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.Drop(3))
		require.True(t, b.Drop(3))

		require.Equal(t, Red, b.Cell(Rows-1, 3))
		require.Equal(t, Yellow, b.Cell(Rows-2, 3))
		require.Equal(t, None, b.Cell(Rows-3, 3))
	})

	t.Run("alternates the turn on success only", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.Drop(0))
		require.Equal(t, Yellow, b.Turn())

		require.False(t, b.Drop(-1), "Out-of-range drop should fail")
		require.False(t, b.Drop(Columns), "Out-of-range drop should fail")
		require.Equal(t, Yellow, b.Turn(), "Failed drop should not pass the turn")
	})

	t.Run("keeps columns contiguous under any legal sequence", func(t *testing.T) {
		b := NewBoard()
		sequence := []int{3, 3, 0, 6, 3, 0, 3, 3, 3, 1, 5, 2}

		for _, col := range sequence {
			require.True(t, b.Drop(col))
			for c := 0; c < Columns; c++ {
				requireContiguous(t, b, c)
			}
		}
	})

	t.Run("full column is a no-op failure", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			require.True(t, b.Drop(2))
		}

		before := *b
		require.False(t, b.Drop(2), "Seventh drop in a column should fail")
		require.Equal(t, before, *b, "Failed drop should leave the board unchanged")
		require.False(t, b.Legal(2))
	})
}

// requireContiguous asserts no empty cell sits below an occupied one.
func requireContiguous(t *testing.T, b *Board, column int) {
	t.Helper()
	count := 0
	for r := 0; r < Rows; r++ {
		if b.Cell(r, column) != None {
			count++
		}
	}
	require.LessOrEqual(t, count, Rows)
	for r := 0; r < count; r++ {
		require.NotEqual(t, None, b.Cell(Rows-1-r, column),
			"Column %d should be filled from the bottom", column)
	}
	for r := count; r < Rows; r++ {
		require.Equal(t, None, b.Cell(Rows-1-r, column),
			"Column %d should be empty above its discs", column)
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("is pure", func(t *testing.T) {
		b := NewBoard()
		b.Drop(3)
		b.Drop(4)

		first := b.Evaluate()
		second := b.Evaluate()

		require.Equal(t, first, second)
		require.Equal(t, Ongoing, first)
	})

	t.Run("horizontal four at row 3 columns 1-4", func(t *testing.T) {
		b := NewBoard()
		for c := 1; c <= 4; c++ {
			b.cells[3][c] = Red
		}

		require.Equal(t, RedWins, b.Evaluate())
	})

	t.Run("horizontal four from play", func(t *testing.T) {
		b := NewBoard()
		for _, col := range []int{1, 0, 2, 0, 3, 5} {
			require.True(t, b.Drop(col))
		}
		require.Equal(t, Ongoing, b.Evaluate())

		require.True(t, b.Drop(4)) // Red completes 1-4 on the bottom row

		require.Equal(t, RedWins, b.Evaluate())
	})

	t.Run("vertical four", func(t *testing.T) {
		b := NewBoard()
		for _, col := range []int{2, 5, 2, 5, 2, 6} {
			require.True(t, b.Drop(col))
		}
		require.Equal(t, Ongoing, b.Evaluate())

		require.True(t, b.Drop(2)) // Red's fourth disc in column 2

		require.Equal(t, RedWins, b.Evaluate())
	})

	t.Run("down-right diagonal four", func(t *testing.T) {
		b := NewBoard()
		// Red ends up on (2,3) (3,4) (4,5) (5,6)
		for _, col := range []int{6, 5, 5, 4, 3, 4, 4, 3, 3, 0} {
			require.True(t, b.Drop(col))
		}
		require.Equal(t, Ongoing, b.Evaluate())

		require.True(t, b.Drop(3))

		require.Equal(t, RedWins, b.Evaluate())
	})

	t.Run("down-left diagonal four", func(t *testing.T) {
		b := NewBoard()
		// Red ends up on (2,3) (3,2) (4,1) (5,0)
		for _, col := range []int{0, 1, 1, 2, 3, 2, 2, 3, 3, 6} {
			require.True(t, b.Drop(col))
		}
		require.Equal(t, Ongoing, b.Evaluate())

		require.True(t, b.Drop(3))

		require.Equal(t, RedWins, b.Evaluate())
	})

	t.Run("full board with no line is a draw", func(t *testing.T) {
		b := fillWithoutLine(t)

		require.True(t, b.Full())
		require.Empty(t, b.LegalColumns())
		require.Equal(t, Draw, b.Evaluate(), "Full lineless board must be a draw, never ongoing")
	})
}

// fillWithoutLine fills all 42 cells with no four-in-a-row anywhere:
// cell color depends on (2*column + bottomRow) mod 4, which caps runs at
// two vertically and diagonally and at one horizontally.
func fillWithoutLine(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			bottom := Rows - 1 - r
			if (2*c+bottom)%4 < 2 {
				b.cells[r][c] = Red
			} else {
				b.cells[r][c] = Yellow
			}
		}
	}
	return b
}

func TestKey(t *testing.T) {
	t.Run("identical contents produce identical keys", func(t *testing.T) {
		first := NewBoard()
		second := NewBoard()
		for _, col := range []int{3, 4, 3, 0} {
			require.True(t, first.Drop(col))
			require.True(t, second.Drop(col))
		}

		require.Equal(t, first.Key(), second.Key())
		require.Len(t, string(first.Key()), Rows*Columns)
	})

	t.Run("differs when contents differ", func(t *testing.T) {
		first := NewBoard()
		second := NewBoard()
		first.Drop(0)
		second.Drop(6)

		require.NotEqual(t, first.Key(), second.Key())
	})
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	b.Drop(3)

	dup := b.Copy()
	dup.Drop(3)

	require.Equal(t, None, b.Cell(Rows-2, 3), "Copy must not alias the original grid")
	require.Equal(t, Yellow, b.Turn())
	require.Equal(t, Red, dup.Turn())
}

func TestRender(t *testing.T) {
	b := NewBoard()
	b.Drop(0)

	rows := b.Render()

	require.Len(t, rows, Rows)
	require.Equal(t, "|R| | | | | | |", rows[Rows-1])
	require.Equal(t, "| | | | | | | |", rows[0])

	key := b.Key()
	b.Render()
	require.Equal(t, key, b.Key(), "Render must not mutate the board")
}
