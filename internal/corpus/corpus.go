package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Record is a single loaded review. Immutable once loaded.
type Record struct {
	Text  string `json:"text"`
	Stars int    `json:"stars"`
}

// Load reads up to limit line-delimited JSON reviews from the given file.
func Load(path string, limit int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

// Decode reads line-delimited JSON records from r until EOF or the limit
// is reached. Each line must carry a text field and a star rating in 1-5.
func Decode(r io.Reader, limit int) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	// Reviews can be long; the default 64KB line cap is not enough.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("malformed record on line %d: %w", lineNo, err)
		}
		if rec.Stars < 1 || rec.Stars > 5 {
			return nil, fmt.Errorf("star rating %d out of range on line %d", rec.Stars, lineNo)
		}

		rec.Text = StripHTML(rec.Text)
		records = append(records, rec)

		if limit > 0 && len(records) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return records, nil
}

// StripHTML extracts plain text from review bodies that carry markup,
// such as the <br /> line breaks common in review exports.
func StripHTML(raw string) string {
	if !strings.ContainsRune(raw, '<') {
		return raw
	}

	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	var textBuilder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			return cleanText(textBuilder.String())

		case html.StartTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					textBuilder.WriteString(text + " ")
				}
			}
		}
	}
}

// cleanText collapses runs of whitespace into single spaces
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
