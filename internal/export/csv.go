package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/orbitsim/internal/sim"
)

// WriteCSV writes one row per frame: time, energy, then x,y,vx,vy for
// each body.
func WriteCSV(w io.Writer, r *sim.Result) error {
	if len(r.Frames) == 0 {
		return ErrEmptyResult
	}

	cw := csv.NewWriter(w)
	n := len(r.Frames[0])

	header := []string{"time", "energy"}
	for i := 0; i < n; i++ {
		header = append(header,
			fmt.Sprintf("b%d_x", i), fmt.Sprintf("b%d_y", i),
			fmt.Sprintf("b%d_vx", i), fmt.Sprintf("b%d_vy", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i, f := range r.Frames {
		row = row[:0]
		row = append(row, format(r.Times[i]), format(r.Energies[i]))
		for _, b := range f {
			row = append(row,
				format(b.Position.X), format(b.Position.Y),
				format(b.Velocity.X), format(b.Velocity.Y))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
