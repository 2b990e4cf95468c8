package entity

// EmptyMark is the owner value of a cell nobody has claimed yet.
const EmptyMark = ""

// Cell is a single grid position, optionally owned by a player's mark.
type Cell struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Mark string `json:"mark,omitempty"`
}

func (that *Cell) IsEmpty() bool {
	return that.Mark == EmptyMark
}

// Board is a square grid of cells stored row-major in a single arena slice.
// The board is the only owner of its cells; everyone else works with
// pointers handed out by At.
type Board struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

// NewBoard - creates an all-empty size×size board. Sizes below 1 collapse
// to the degenerate single-cell board.
func NewBoard(size int) *Board {
	if size < 1 {
		size = 1
	}

	cells := make([]Cell, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cells[row*size+col] = Cell{Row: row, Col: col}
		}
	}

	return &Board{Size: size, Cells: cells}
}

// At - returns the cell at (row, col), or nil when outside the grid.
func (that *Board) At(row, col int) *Cell {
	if row < 0 || row >= that.Size || col < 0 || col >= that.Size {
		return nil
	}

	return &that.Cells[row*that.Size+col]
}

// MarkAt - reads the owner mark at (row, col); out-of-range reads are empty.
func (that *Board) MarkAt(row, col int) string {
	cell := that.At(row, col)
	if cell == nil {
		return EmptyMark
	}

	return cell.Mark
}

func (that *Board) IsFull() bool {
	for i := range that.Cells {
		if that.Cells[i].IsEmpty() {
			return false
		}
	}

	return true
}

// EmptyCells - returns pointers to every unowned cell in row-major order.
func (that *Board) EmptyCells() []*Cell {
	empty := make([]*Cell, 0, len(that.Cells))
	for i := range that.Cells {
		if that.Cells[i].IsEmpty() {
			empty = append(empty, &that.Cells[i])
		}
	}

	return empty
}

// Filled - counts owned cells, which equals the number of accepted moves.
func (that *Board) Filled() int {
	count := 0
	for i := range that.Cells {
		if !that.Cells[i].IsEmpty() {
			count++
		}
	}

	return count
}

// Clone - returns an independent deep copy of the board.
func (that *Board) Clone() *Board {
	cells := make([]Cell, len(that.Cells))
	copy(cells, that.Cells)

	return &Board{Size: that.Size, Cells: cells}
}
