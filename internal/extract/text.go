package extract

import (
	"os"
	"strings"
)

// extractPlainText is the fallback for unrecognized extensions: split
// the file into blank-line delimited paragraphs and flow them.
func extractPlainText(filename string) ([]Page, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Flow(Paragraphs(string(data))), nil
}

// Paragraphs splits text on blank lines, joining wrapped source lines
// with single spaces.
func Paragraphs(text string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}
