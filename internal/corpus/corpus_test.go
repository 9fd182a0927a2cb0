package corpus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rating-engine/ratings/internal/corpus"
)

func TestDecode(t *testing.T) {
	input := `{"text": "Great tacos, will come back!", "stars": 5}
{"text": "Cold food and slow service.", "stars": 2}

{"text": "Decent for the price.", "stars": 3}
`

	records, err := corpus.Decode(strings.NewReader(input), 0)
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, "Great tacos, will come back!", records[0].Text)
	assert.Equal(t, 5, records[0].Stars)
	assert.Equal(t, 2, records[1].Stars)
}

func TestDecodeRespectsLimit(t *testing.T) {
	input := `{"text": "one", "stars": 1}
{"text": "two", "stars": 2}
{"text": "three", "stars": 3}
`

	records, err := corpus.Decode(strings.NewReader(input), 2)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestDecodeMalformedLine(t *testing.T) {
	input := `{"text": "fine", "stars": 4}
{"text": "broken", "stars":
`

	_, err := corpus.Decode(strings.NewReader(input), 0)
	if err == nil {
		t.Fatal("Expected error for malformed JSON line, got none")
	}
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeRejectsOutOfRangeStars(t *testing.T) {
	input := `{"text": "suspicious", "stars": 9}`

	_, err := corpus.Decode(strings.NewReader(input), 0)
	if err == nil {
		t.Fatal("Expected error for out-of-range star rating, got none")
	}
}

func TestDecodeEmptyCorpus(t *testing.T) {
	_, err := corpus.Decode(strings.NewReader(""), 0)
	if err == nil {
		t.Fatal("Expected error for empty corpus, got none")
	}
}

func TestDecodeStripsMarkup(t *testing.T) {
	input := `{"text": "Amazing place.<br /><br />Would eat here again.", "stars": 5}`

	records, err := corpus.Decode(strings.NewReader(input), 0)
	assert.NoError(t, err)
	assert.Equal(t, "Amazing place. Would eat here again.", records[0].Text)
}

func TestStripHTML(t *testing.T) {
	raw := "<p>Best <b>burger</b> in town</p><script>alert(1)</script>"
	assert.Equal(t, "Best burger in town", corpus.StripHTML(raw))

	// Plain text passes through untouched
	plain := "No markup here, just a review."
	assert.Equal(t, plain, corpus.StripHTML(plain))
}
