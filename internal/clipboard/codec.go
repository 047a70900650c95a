package clipboard

import "strings"

// The wire format is the de facto spreadsheet interchange text: tab
// separated columns, newline separated rows, fields containing a tab,
// newline, quote or comma wrapped in double quotes with embedded quotes
// doubled. External spreadsheet apps both produce and accept this shape.

// Encode serializes a rectangular cell block.
func Encode(cells [][]string) string {
	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(encodeField(field))
		}
	}
	return b.String()
}

func encodeField(field string) string {
	if !strings.ContainsAny(field, "\t\n\",") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Parse decodes clipboard text into rows of fields. Quoted fields may span
// lines and carry "" as an escaped quote. One trailing empty line, which
// most spreadsheet apps append on copy, is dropped.
func Parse(text string) [][]string {
	text = normalizeText(text)
	if text == "" {
		return nil
	}

	var (
		rows  [][]string
		row   []string
		field strings.Builder
	)
	inQuotes := false
	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(ch)
			continue
		}
		switch ch {
		case '"':
			if field.Len() == 0 {
				inQuotes = true
			} else {
				field.WriteByte(ch)
			}
		case '\t':
			endField()
		case '\n':
			endRow()
		default:
			field.WriteByte(ch)
		}
	}
	endRow()

	if n := len(rows); n > 1 && len(rows[n-1]) == 1 && rows[n-1][0] == "" {
		rows = rows[:n-1]
	}
	return rows
}
