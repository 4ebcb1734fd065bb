package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	t.Run("valid utf8 passes through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello, world", PlainText([]byte("hello, world"), 40000))
	})

	t.Run("invalid bytes are replaced", func(t *testing.T) {
		t.Parallel()
		got := PlainText([]byte{0xff, 0xfe, 'h', 'i'}, 40000)
		assert.Equal(t, "�hi", got)
	})

	t.Run("caps at max chars", func(t *testing.T) {
		t.Parallel()
		got := PlainText([]byte(strings.Repeat("a", 100)), 10)
		assert.Equal(t, strings.Repeat("a", 10), got)
	})

	t.Run("zero cap means unlimited", func(t *testing.T) {
		t.Parallel()
		got := PlainText([]byte(strings.Repeat("b", 100)), 0)
		assert.Len(t, got, 100)
	})
}

// Not a parseable PDF, so extraction falls through to the heuristic scan.
// The BT...ET block carries parenthesized text (with escaped whitespace
// sequences) and a hex string; runs of extra spaces are collapsed.
func TestPDFScanTextBlocks(t *testing.T) {
	t.Parallel()

	data := []byte(`%nonsense BT (Quarterly revenue grew twelve percent across divisions) Tj (net retention stayed\nabove the target    window) Tj <436F6E747261637420706970656C696E6520737472656E677468> ET`)

	got := PDF(data, "report.pdf", 40000)
	want := "Quarterly revenue grew twelve percent across divisions " +
		"net retention stayed above the target window " +
		"Contract pipeline strength"
	assert.Equal(t, want, got)
}

func TestPDFScanStreamRuns(t *testing.T) {
	t.Parallel()

	data := []byte("binary\nstream\nThe enterprise agreement covers payment terms and renewal conditions for all vendors\nendstream\n")

	got := PDF(data, "contract.pdf", 40000)
	assert.Equal(t, "The enterprise agreement covers payment terms and renewal conditions for all vendors", got)
}

// With no text blocks or streams the scan falls back to collecting ASCII
// runs from the whole file, skipping runs that look like PDF syntax.
func TestPDFScanWholeFileFallback(t *testing.T) {
	t.Parallel()

	data := []byte("\x00\x01Confidential merger discussion notes follow\x00<<<(Page)Rect>>>\x00Risk assessment uses standard scoring methodology\x02")

	got := PDF(data, "notes.pdf", 40000)
	want := "Confidential merger discussion notes follow Risk assessment uses standard scoring methodology"
	assert.Equal(t, want, got)
}

func TestPDFScanAdvisoryNote(t *testing.T) {
	t.Parallel()

	got := PDF([]byte("\x00\x01\x02tiny\x03"), "scanned.pdf", 40000)
	assert.Contains(t, got, `[PDF: "scanned.pdf"`)
	assert.Contains(t, got, "convert to .txt or .md")
}

func TestPDFScanCapsAtMaxChars(t *testing.T) {
	t.Parallel()

	data := []byte("\x00" + strings.Repeat("Sensitive clause material repeats here ", 10) + "\x00")

	got := PDF(data, "long.pdf", 25)
	require.Len(t, []rune(got), 25)
	assert.True(t, strings.HasPrefix(got, "Sensitive clause material"))
}

func TestDecodeHexText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello World!", decodeHexText("48656C6C6F20576F726C6421"))
	assert.Empty(t, decodeHexText("48656"), "odd length rejected")
	assert.Empty(t, decodeHexText("01020304"), "control characters are dropped")
}
