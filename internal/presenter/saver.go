package presenter

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"regionplot-go/pkg/regionplot"
)

// SaveMeshCSV writes one x,y,class row per mesh point. class is the index
// into the rendered classes, empty when the prediction matched none.
func SaveMeshCSV(m *regionplot.Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"x", "y", "class"}); err != nil {
		return err
	}

	cols, rows := m.Dims()
	for r := range rows {
		for c := range cols {
			record := []string{
				strconv.FormatFloat(m.X(c), 'f', -1, 64),
				strconv.FormatFloat(m.Y(r), 'f', -1, 64),
				"",
			}
			if z := m.Z(c, r); !math.IsNaN(z) {
				record[2] = strconv.Itoa(int(z))
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
