// Package board describes the 64-cell goose track and how each cell is classified.
package board

import "fmt"

const (
	Size      = 64
	Columns   = 8
	Rows      = Size / Columns
	StartCell = 0
	EndCell   = Size - 1

	// SetbackEvery and BonusEvery are the divisors that mark special cells.
	SetbackEvery = 5
	BonusEvery   = 7
)

// Kind is the classification of a single cell.
type Kind int

const (
	Normal Kind = iota
	Start
	End
	Setback
	Bonus
)

var kindNames = map[Kind]string{
	Normal:  "normal",
	Start:   "start",
	End:     "end",
	Setback: "setback",
	Bonus:   "bonus",
}

// Kinds lists every cell kind, in declaration order.
var Kinds = []Kind{Normal, Start, End, Setback, Bonus}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Suffix returns the label suffix shown after the cell index.
func (k Kind) Suffix() string {
	switch k {
	case Start:
		return "-Inicio"
	case End:
		return "-Fin"
	case Setback:
		return "-Castigo"
	case Bonus:
		return "-Suerte"
	}
	return ""
}

// KindOf classifies index. The checks run in a fixed order and the first
// match wins, so 0 is Start (not Setback) and 35 is Setback (not Bonus).
func KindOf(index int) Kind {
	switch {
	case index == StartCell:
		return Start
	case index == EndCell:
		return End
	case index%SetbackEvery == 0:
		return Setback
	case index%BonusEvery == 0:
		return Bonus
	default:
		return Normal
	}
}

// Classify returns the kind of the cell at index and its display label.
func Classify(index int) (Kind, string) {
	kind := KindOf(index)
	return kind, fmt.Sprintf("%d%s", index, kind.Suffix())
}

// Index returns the track index drawn at the given grid row and column.
// Cells are laid out left to right, top to bottom.
func Index(row, col int) int {
	return col + row*Columns
}

// Position returns the grid row and column for a track index.
func Position(index int) (row, col int) {
	return index / Columns, index % Columns
}
