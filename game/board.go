package game

const (
	Rows    = 6
	Columns = 7
	Connect = 4 // Discs in a line needed to win
)

// Disc is the mark occupying a cell.
type Disc byte

const (
	None   Disc = '.'
	Red    Disc = 'R' // Red moves first
	Yellow Disc = 'Y'
)

func (d Disc) String() string {
	return string(d)
}

// Other returns the opposing mark.
func (d Disc) Other() Disc {
	if d == Red {
		return Yellow
	}
	return Red
}

type Outcome int

const (
	Ongoing Outcome = iota
	RedWins
	YellowWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red wins"
	case YellowWins:
		return "yellow wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// StateKey is the canonical row-major encoding of all 42 cells. Boards
// with identical cell contents always produce identical keys.
type StateKey string

// Board holds the 6x7 grid and whose turn is next. Occupied cells in a
// column are always contiguous from the bottom row upward.
type Board struct {
	cells [Rows][Columns]Disc
	turn  Disc
}

// NewBoard returns an empty board with Red to move.
func NewBoard() *Board {
	b := &Board{turn: Red}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			b.cells[r][c] = None
		}
	}
	return b
}

func (b *Board) Copy() *Board {
	dup := *b
	return &dup
}

// Turn returns the mark that moves next.
func (b *Board) Turn() Disc {
	return b.turn
}

// Cell returns the mark at the given row and column. Row 0 is the top.
func (b *Board) Cell(row, column int) Disc {
	return b.cells[row][column]
}

// Legal reports whether a disc can be dropped into the column. It never
// mutates the board.
func (b *Board) Legal(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b.cells[0][column] == None
}

// LegalColumns returns the playable columns in ascending order.
func (b *Board) LegalColumns() []int {
	var columns []int
	for c := 0; c < Columns; c++ {
		if b.Legal(c) {
			columns = append(columns, c)
		}
	}
	return columns
}

// Full reports whether no legal column remains.
func (b *Board) Full() bool {
	return len(b.LegalColumns()) == 0
}

// Drop places the current player's disc in the lowest empty cell of the
// column and passes the turn. It returns false and leaves the board
// unchanged when the column is full or out of range. This is the only
// mutating operation.
func (b *Board) Drop(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == None {
			b.cells[row][column] = b.turn
			b.turn = b.turn.Other()
			return true
		}
	}
	return false
}

// Evaluate recomputes the terminal status from the full grid. It checks
// horizontal lines first, then vertical, then both diagonal directions,
// scanning rows top to bottom and columns left to right.
func (b *Board) Evaluate() Outcome {
	// Horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c+Connect <= Columns; c++ {
			if d := b.cells[r][c]; d != None &&
				d == b.cells[r][c+1] && d == b.cells[r][c+2] && d == b.cells[r][c+3] {
				return wins(d)
			}
		}
	}
	// Vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r+Connect <= Rows; r++ {
			if d := b.cells[r][c]; d != None &&
				d == b.cells[r+1][c] && d == b.cells[r+2][c] && d == b.cells[r+3][c] {
				return wins(d)
			}
		}
	}
	// Diagonals: down-right, then down-left from each anchor
	for r := 0; r+Connect <= Rows; r++ {
		for c := 0; c+Connect <= Columns; c++ {
			if d := b.cells[r][c]; d != None &&
				d == b.cells[r+1][c+1] && d == b.cells[r+2][c+2] && d == b.cells[r+3][c+3] {
				return wins(d)
			}
			if d := b.cells[r][c+3]; d != None &&
				d == b.cells[r+1][c+2] && d == b.cells[r+2][c+1] && d == b.cells[r+3][c] {
				return wins(d)
			}
		}
	}
	if b.Full() {
		return Draw
	}
	return Ongoing
}

func wins(d Disc) Outcome {
	if d == Red {
		return RedWins
	}
	return YellowWins
}

// Key encodes the grid row-major into the state key used to index the
// learning table. Pure function of cell contents.
func (b *Board) Key() StateKey {
	buf := make([]byte, 0, Rows*Columns)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			buf = append(buf, byte(b.cells[r][c]))
		}
	}
	return StateKey(buf)
}

// Render returns a printable snapshot, one string per row, top row
// first. It never mutates the board.
func (b *Board) Render() []string {
	rows := make([]string, 0, Rows)
	for r := 0; r < Rows; r++ {
		line := make([]byte, 0, 2*Columns+1)
		line = append(line, '|')
		for c := 0; c < Columns; c++ {
			mark := byte(b.cells[r][c])
			if b.cells[r][c] == None {
				mark = ' '
			}
			line = append(line, mark, '|')
		}
		rows = append(rows, string(line))
	}
	return rows
}
