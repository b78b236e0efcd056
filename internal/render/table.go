// Package render turns extracted records into markdown and patches the
// result into a target document.
package render

import "strings"

const cellStyle = "border: 1px solid #ddd; padding:4px;"

// dropEmptyColumns removes every column whose cells are all blank, trimming
// headers in lockstep with the rows.
func dropEmptyColumns(headers []string, rows [][]string) ([]string, [][]string) {
	keep := make([]int, 0, len(headers))
	for col := range headers {
		for _, row := range rows {
			if col < len(row) && strings.TrimSpace(row[col]) != "" {
				keep = append(keep, col)
				break
			}
		}
	}

	newHeaders := make([]string, 0, len(keep))
	for _, col := range keep {
		newHeaders = append(newHeaders, headers[col])
	}
	newRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		newRow := make([]string, 0, len(keep))
		for _, col := range keep {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			newRow = append(newRow, cell)
		}
		newRows = append(newRows, newRow)
	}
	return newHeaders, newRows
}

// InlineTable renders an HTML table compact enough to live inside a single
// markdown table cell. An empty row set yields an empty string, as does a row
// set whose cells are all blank.
func InlineTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	headers, rows = dropEmptyColumns(headers, rows)
	if len(headers) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table style='border-collapse: collapse;'>")
	b.WriteString("<tr>")
	for _, h := range headers {
		b.WriteString("<th style='" + cellStyle + "'>")
		b.WriteString(h)
		b.WriteString("</th>")
	}
	b.WriteString("</tr>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td style='" + cellStyle + "'>")
			b.WriteString(cell)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// MarkdownTable renders a pipe table with a dash separator row. The same
// empty-column rule as InlineTable applies.
func MarkdownTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	headers, rows = dropEmptyColumns(headers, rows)
	if len(headers) == 0 {
		return ""
	}

	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}
