package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// TXT renders a plain-text report: a header block followed by tab-separated
// rows. Meant for quick terminal inspection, not machine parsing.
func TXT(t Table) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", strings.ToUpper(t.Title))
	fmt.Fprintf(&buf, "Generated on: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	if t.Range != nil {
		fmt.Fprintf(&buf, "Date range: %s to %s\n",
			t.Range.From.Format("2006-01-02"), t.Range.To.Format("2006-01-02"))
	}
	fmt.Fprintf(&buf, "Total records: %d\n\n", len(t.Rows))

	buf.WriteString(strings.Join(t.Columns, "\t"))
	buf.WriteByte('\n')
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		buf.WriteString(strings.Join(cells, "\t"))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
