// Package lines turns the free text typed into the line-drawing form into
// drawable segments.
package lines

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/notify"
)

const tokensPerLine = 5

var (
	ErrFormat      = errors.New("invalid line format")
	ErrNotNumber   = errors.New("coordinate is not a number")
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

var coordinateFields = [4]string{"x1", "y1", "x2", "y2"}

// ValidationError describes the first offending line of a batch.
type ValidationError struct {
	Line  int
	Field string
	Value string
	Kind  error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrFormat:
		return fmt.Sprintf("Invalid line length at line %d. Every line should be in the format of x1 y1 x2 y2 color.", e.Line)
	case ErrNotNumber:
		return fmt.Sprintf("Invalid input of %s at line %d. %s must be a number.", e.Field, e.Line, e.Field)
	case ErrOutOfBounds:
		return fmt.Sprintf("Input out of bounds at line %d. %s must be in range of %d-%d.", e.Line, e.Field, domain.MinCoordinate, domain.MaxCoordinate)
	default:
		return fmt.Sprintf("invalid input at line %d", e.Line)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Parse validates the whole input and returns one segment per non-blank line.
// The first offending line aborts the batch: the result is empty and a single
// alert naming the line and field is raised on n.
func Parse(input string, n notify.Notifier) []domain.Segment {
	segments, err := Validate(input)
	if err != nil {
		if n != nil {
			n.Alert(err.Error())
		}
		return []domain.Segment{}
	}
	return segments
}

// Validate is Parse without side effects. The returned error is a
// *ValidationError.
func Validate(input string) ([]domain.Segment, error) {
	rows := splitRows(input)
	segments := make([]domain.Segment, 0, len(rows))

	for idx, row := range rows {
		seg, err := parseRow(idx, row)
		if err != nil {
			return []domain.Segment{}, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func splitRows(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	var rows []string
	for _, row := range strings.Split(input, "\n") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func parseRow(idx int, row string) (domain.Segment, error) {
	tokens := strings.Fields(row)
	if len(tokens) != tokensPerLine {
		return domain.Segment{}, &ValidationError{Line: idx, Value: row, Kind: ErrFormat}
	}

	var coords [4]float64
	for i, field := range coordinateFields {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.Segment{}, &ValidationError{Line: idx, Field: field, Value: tokens[i], Kind: ErrNotNumber}
		}
		coords[i] = v
	}
	for i, field := range coordinateFields {
		if !domain.InBounds(coords[i]) {
			return domain.Segment{}, &ValidationError{Line: idx, Field: field, Value: tokens[i], Kind: ErrOutOfBounds}
		}
	}

	return domain.Segment{
		X1:    coords[0],
		Y1:    coords[1],
		X2:    coords[2],
		Y2:    coords[3],
		Color: tokens[4],
		Key:   idx,
	}, nil
}

// Format renders segments back into the text form accepted by Parse.
func Format(segments []domain.Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s %s %s %s",
			formatCoord(seg.X1), formatCoord(seg.Y1), formatCoord(seg.X2), formatCoord(seg.Y2), seg.Color)
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
