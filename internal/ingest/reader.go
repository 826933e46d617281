// Package ingest loads the Jeopardy CSV dump into the trivia_questions table.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
)

const (
	colShowNumber = "Show Number"
	colAirDate    = "Air Date"
	colRound      = "Round"
	colCategory   = "Category"
	colValue      = "Value"
	colQuestion   = "Question"
	colAnswer     = "Answer"
)

var requiredColumns = []string{colShowNumber, colAirDate, colRound, colCategory, colValue, colQuestion, colAnswer}

// ReadQuestions parses the CSV in r and keeps rows whose value is present and
// at most maxValue. It returns the kept questions and the number of data rows read.
func ReadQuestions(r io.Reader, maxValue int) ([]*trivia.Question, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("csv is empty")
		}
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, 0, fmt.Errorf("missing column %q", col)
		}
	}

	var (
		questions []*trivia.Question
		read      int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, read, fmt.Errorf("read row %d: %w", read+1, err)
		}
		read++

		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		value, ok := trivia.ParseValueLenient(field(colValue))
		if !ok || value > maxValue {
			continue
		}

		q := &trivia.Question{
			ShowNumber: parseShowNumber(field(colShowNumber)),
			Round:      optional(field(colRound)),
			Category:   optional(field(colCategory)),
			Value:      &value,
			Question:   optional(field(colQuestion)),
			Answer:     optional(field(colAnswer)),
		}
		if d, err := util.ParseDate(field(colAirDate)); err == nil {
			q.AirDate = d
		}
		questions = append(questions, q)
	}

	return questions, read, nil
}

func parseShowNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return n
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
