package export

import (
	"bytes"
	"strings"
)

// CSV renders the table as comma-separated rows, header first. Cell values
// are joined as-is, without quoting.
//
// TODO: quote cells containing commas (encoding/csv) once the dashboard's
// import path can accept quoted fields.
func CSV(t Table) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(t.Columns, ","))
	buf.WriteByte('\n')
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		buf.WriteString(strings.Join(cells, ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
