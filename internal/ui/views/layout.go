package views

import (
	"notepad/internal/textbuf"
)

// Row is one screen line of the editing surface
type Row struct {
	Line  int // logical line, 0-based
	Start int // buffer offset of the first rune
	End   int // buffer offset after the last rune, newline excluded
}

// Layout splits lines into screen rows. With wrap on, lines longer than
// width break after the last blank that fits, or mid-word when there is none.
func Layout(lines [][]rune, width int, wrap bool) []Row {
	rows := make([]Row, 0, len(lines))
	offset := 0
	for i, line := range lines {
		if !wrap || width <= 0 || len(line) == 0 {
			rows = append(rows, Row{Line: i, Start: offset, End: offset + len(line)})
		} else {
			for _, seg := range wrapLine(line, width) {
				rows = append(rows, Row{Line: i, Start: offset + seg[0], End: offset + seg[1]})
			}
		}
		offset += len(line) + 1
	}
	return rows
}

func wrapLine(line []rune, width int) [][2]int {
	var segs [][2]int
	start := 0
	for start < len(line) {
		col := 0
		i := start
		lastBlank := -1
		for i < len(line) {
			w := textbuf.RuneWidth(line[i])
			if col+w > width && i > start {
				break
			}
			col += w
			if line[i] == ' ' || line[i] == '\t' {
				lastBlank = i
			}
			i++
		}
		cut := i
		if i < len(line) && lastBlank >= start {
			cut = lastBlank + 1
		}
		segs = append(segs, [2]int{start, cut})
		start = cut
	}
	return segs
}

// RowOf returns the index of the row holding offset pos. An offset on a wrap
// boundary belongs to the row it starts.
func RowOf(rows []Row, pos int) int {
	lo, hi := 0, len(rows)-1
	ans := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if rows[mid].Start <= pos {
			ans = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ans
}

// ColumnIn returns the display column of pos within row
func ColumnIn(text []rune, row Row, pos int) int {
	col := 0
	for i := row.Start; i < pos && i < row.End; i++ {
		col += textbuf.RuneWidth(text[i])
	}
	return col
}

// OffsetAt returns the offset in row nearest display column col without
// passing it
func OffsetAt(text []rune, row Row, col int) int {
	w := 0
	i := row.Start
	for i < row.End {
		rw := textbuf.RuneWidth(text[i])
		if w+rw > col {
			break
		}
		w += rw
		i++
	}
	return i
}
