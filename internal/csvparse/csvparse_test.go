package csvparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	records := Parse("a,b\n1,2\n3,4")

	require.Len(t, records, 2)
	assert.Equal(t, Record{"a": "1", "b": "2"}, records[0])
	assert.Equal(t, Record{"a": "3", "b": "4"}, records[1])
}

func TestParseQuotedFields(t *testing.T) {
	csv := "title,note\n\"hello, \"\"world\"\"\nend\",plain"

	records := Parse(csv)

	require.Len(t, records, 1)
	assert.Equal(t, "hello, \"world\"\nend", records[0]["title"])
	assert.Equal(t, "plain", records[0]["note"])
}

func TestParseCRLF(t *testing.T) {
	records := Parse("a,b\r\n1,2\r\n3,4")

	require.Len(t, records, 2)
	assert.Equal(t, "2", records[0]["b"])
}

func TestParseHeaderNormalization(t *testing.T) {
	records := Parse("  Job Title , DESCRIPTION \nclerk,desk work")

	require.Len(t, records, 1)
	assert.Equal(t, "clerk", records[0]["job title"])
	assert.Equal(t, "desk work", records[0]["description"])
}

func TestParseShortRowsPadded(t *testing.T) {
	records := Parse("a,b,c\n1,2")

	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0]["a"])
	assert.Equal(t, "2", records[0]["b"])
	assert.Equal(t, "", records[0]["c"])
}

func TestParseDiscardsEmptyLines(t *testing.T) {
	records := Parse("a,b\n\n1,2\n   \n3,4\n")

	require.Len(t, records, 2)
}

func TestParseTooFewRows(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty input", ""},
		{"whitespace only", "   \n  \n"},
		{"header only", "a,b"},
		{"header and blank lines", "a,b\n\n\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, Parse(tc.csv))
		})
	}
}

func TestParseStrayQuoteTolerated(t *testing.T) {
	// A lone quote mid-value toggles quote state as scanned: the rest of the
	// line is swallowed into the field. The parser must not reject the row.
	records := Parse("a,b\n5\" rail,2")

	require.Len(t, records, 1)
	assert.Equal(t, "5 rail,2", records[0]["a"])
	assert.Equal(t, "", records[0]["b"])
}

func TestParseValuesTrimmed(t *testing.T) {
	records := Parse("a,b\n  spaced  ,2")

	require.Len(t, records, 1)
	assert.Equal(t, "spaced", records[0]["a"])
}

func TestParseEmbeddedNewlineKeepsRowCount(t *testing.T) {
	csv := "a,b\n\"line one\nline two\",x\nlast,y"

	records := Parse(csv)

	require.Len(t, records, 2)
	assert.Equal(t, "line one\nline two", records[0]["a"])
	assert.Equal(t, "last", records[1]["a"])
}
