// Package csvparse converts raw spreadsheet CSV exports into string records.
//
// The scanner is deliberately permissive. Sheet exports in the wild carry
// stray quotes, inconsistent column counts and embedded newlines; the standard
// library reader rejects several of these shapes, so a single-pass character
// scan is used instead and malformed input is tolerated rather than refused.
package csvparse

import "strings"

// Record maps a lower-cased, trimmed header to the trimmed field value of one row.
type Record map[string]string

// Parse tokenizes raw CSV text and zips each data row against the header row.
//
// Quoting follows the usual spreadsheet convention: a quote opens a quoted
// field, a doubled quote inside one is a literal quote, and commas and
// newlines inside quotes are taken literally. A stray unescaped quote simply
// toggles quote state as scanned.
//
// Header strings are trimmed and lower-cased so column lookup is case and
// whitespace insensitive. Rows shorter than the header are padded with empty
// strings. Fewer than two surviving rows yields an empty result, not an error.
func Parse(csvText string) []Record {
	csvText = strings.ReplaceAll(csvText, "\r\n", "\n")
	csvText = strings.TrimSpace(csvText)

	var lines [][]string
	var currentLine []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(csvText); i++ {
		ch := csvText[i]

		if inQuotes {
			switch {
			case ch == '"' && i+1 < len(csvText) && csvText[i+1] == '"':
				field.WriteByte('"')
				i++
			case ch == '"':
				inQuotes = false
			default:
				field.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case ',':
			currentLine = append(currentLine, field.String())
			field.Reset()
		case '\n':
			currentLine = append(currentLine, field.String())
			field.Reset()
			lines = append(lines, currentLine)
			currentLine = nil
		default:
			field.WriteByte(ch)
		}
	}
	currentLine = append(currentLine, field.String())
	lines = append(lines, currentLine)

	// Drop rows with no meaningful content: a lone empty field.
	surviving := lines[:0]
	for _, line := range lines {
		if len(line) > 1 || (len(line) == 1 && strings.TrimSpace(line[0]) != "") {
			surviving = append(surviving, line)
		}
	}
	if len(surviving) < 2 {
		return nil
	}

	headers := make([]string, len(surviving[0]))
	for i, h := range surviving[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]Record, 0, len(surviving)-1)
	for _, line := range surviving[1:] {
		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(line) {
				record[header] = strings.TrimSpace(line[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records
}
