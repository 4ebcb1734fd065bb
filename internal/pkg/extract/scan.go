package extract

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Heuristic extraction against the PDF binary format, used when the
// structured reader cannot parse the file. Strategies, in order:
//
//  1. BT...ET text blocks: parenthesized and hex-encoded strings
//  2. readable ASCII runs inside stream objects
//  3. whole-file ASCII run scan
var (
	btBlockRe    = regexp.MustCompile(`(?s)BT(.*?)ET`)
	parenTextRe  = regexp.MustCompile(`\(([^)]{1,300})\)`)
	hexTextRe    = regexp.MustCompile(`<([0-9a-fA-F]+)>`)
	streamRe     = regexp.MustCompile(`(?s)stream\r?\n(.*?)\r?\nendstream`)
	asciiRun5Re  = regexp.MustCompile(`[\x20-\x7E]{5,}`)
	asciiRun6Re  = regexp.MustCompile(`[\x20-\x7E]{6,}`)
	hasLetters3  = regexp.MustCompile(`[a-zA-Z]{3,}`)
	hasLetters4  = regexp.MustCompile(`[a-zA-Z]{4,}`)
	pdfSyntaxRe  = regexp.MustCompile(`^[<>\[\]()\\/]{3,}`)
	multiSpaceRe = regexp.MustCompile(`\s{3,}`)

	escapedWS = strings.NewReplacer(`\n`, " ", `\r`, " ", `\t`, " ")
)

func scanPDF(data []byte, name string, maxChars int) string {
	raw := string(data)
	var parts []string

	for _, block := range btBlockRe.FindAllStringSubmatch(raw, -1) {
		for _, m := range parenTextRe.FindAllStringSubmatch(block[1], -1) {
			cleaned := strings.TrimSpace(escapedWS.Replace(m[1]))
			if len(cleaned) > 2 {
				parts = append(parts, cleaned)
			}
		}
		for _, m := range hexTextRe.FindAllStringSubmatch(block[1], -1) {
			if decoded := decodeHexText(m[1]); decoded != "" {
				parts = append(parts, decoded)
			}
		}
	}

	for _, stream := range streamRe.FindAllStringSubmatch(raw, -1) {
		for _, run := range asciiRun5Re.FindAllString(stream[1], -1) {
			if hasLetters3.MatchString(run) {
				parts = append(parts, run)
			}
		}
	}

	text := strings.Join(parts, " ")

	if len(strings.TrimSpace(text)) < 80 {
		var runs []string
		for _, run := range asciiRun6Re.FindAllString(raw, -1) {
			if hasLetters4.MatchString(run) && !pdfSyntaxRe.MatchString(run) {
				runs = append(runs, run)
			}
		}
		text = strings.Join(runs, " ")
	}

	text = strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))

	if len(text) < 50 {
		return advisoryNote(name)
	}
	return truncate(text, maxChars)
}

// decodeHexText turns an even-length hex string into its printable
// ASCII characters, dropping everything else.
func decodeHexText(s string) string {
	if len(s)%2 != 0 {
		return ""
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return ""
	}
	printable := make([]byte, 0, len(decoded))
	for _, b := range decoded {
		if b >= 0x20 && b < 0x7F {
			printable = append(printable, b)
		}
	}
	if len(printable) <= 2 {
		return ""
	}
	return string(printable)
}

func advisoryNote(name string) string {
	return fmt.Sprintf("[PDF: %q — text extraction was limited. "+
		"For best results, convert to .txt or .md before uploading.]", name)
}
