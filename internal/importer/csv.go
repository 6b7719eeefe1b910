package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikbrunner/drill/internal/model"
)

var (
	ErrNoHeader       = errors.New("file has no header row")
	ErrMissingColumns = errors.New("missing required columns")
	ErrInvalidID      = errors.New("invalid question id")
	ErrDuplicateID    = errors.New("duplicate question id")
)

// utf8BOM is written by spreadsheet exports in front of the first header.
const utf8BOM = "\uFEFF"

// ParseCSV parses a question deck in CSV format.
//
// Columns are located by header name, so their order does not matter and
// extra columns are ignored. Cell values are kept verbatim.
func ParseCSV(r io.Reader) ([]model.Question, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	questions := []model.Question{}
	seen := make(map[int]bool)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rawID := strings.TrimSpace(record[index["ID"]])
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w %q", line, ErrInvalidID, rawID)
		}
		if seen[id] {
			return nil, fmt.Errorf("line %d: %w %d", line, ErrDuplicateID, id)
		}
		seen[id] = true

		questions = append(questions, model.Question{
			ID:       id,
			Category: record[index["Category"]],
			Question: record[index["Question"]],
			Answer:   record[index["Answer"]],
		})
	}

	return questions, nil
}

// columnIndex maps each required column to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(model.Columns))
	var missing []string
	for _, col := range model.Columns {
		pos, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		index[col] = pos
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return index, nil
}
