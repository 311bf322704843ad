package renderer

import "fmt"

// Band is a contiguous range of tracer-space rows [Begin, End) owned by one worker.
// Tracer-space row 0 is the bottom of the image.
type Band struct {
	ID    int
	Begin int
	End   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.End - b.Begin
}

// SplitBands divides height rows into count contiguous, non-overlapping bands.
// When height is not a multiple of count the first height%count bands get one extra row.
func SplitBands(height, count int) []Band {
	if height <= 0 || count <= 0 {
		panic(fmt.Sprintf("renderer: cannot split %d rows into %d bands", height, count))
	}
	count = min(count, height)

	baseRows := height / count
	extraRows := height % count

	bands := make([]Band, 0, count)
	begin := 0
	for i := 0; i < count; i++ {
		rows := baseRows
		if i < extraRows {
			rows++
		}
		bands = append(bands, Band{ID: i, Begin: begin, End: begin + rows})
		begin += rows
	}
	return bands
}
