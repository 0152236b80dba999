package response

import (
	"encoding/json"
	"math"

	"github.com/osrmkit/osrmkit/errors"
)

type fallbackCellDoc [2]int

type tableBody struct {
	Durations          [][]cell          `json:"durations,omitempty"`
	Distances          [][]cell          `json:"distances,omitempty"`
	Sources            []waypointDoc     `json:"sources,omitempty"`
	Destinations       []waypointDoc     `json:"destinations,omitempty"`
	FallbackSpeedCells []fallbackCellDoc `json:"fallback_speed_cells,omitempty"`
}

// Table is a decoded Table service result.
type Table struct {
	payload payload
	body    tableBody
}

// NewTable decodes a serialized Table payload.
func NewTable(data []byte) (*Table, error) {
	t := &Table{payload: payload{data: data}}
	if err := json.Unmarshal(data, &t.body); err != nil {
		return nil, errors.Internal(err, "decode table payload")
	}
	return t, nil
}

// TakeBlob transfers the serialized payload out of the response.
func (t *Table) TakeBlob() (*Blob, error) { return t.payload.take() }

// Close releases the payload if it was not transferred.
func (t *Table) Close() { t.payload.close() }

// SourceCount returns the number of matrix rows.
func (t *Table) SourceCount() int {
	if len(t.body.Sources) > 0 {
		return len(t.body.Sources)
	}
	if len(t.body.Durations) > 0 {
		return len(t.body.Durations)
	}
	return len(t.body.Distances)
}

// DestinationCount returns the number of matrix columns.
func (t *Table) DestinationCount() int {
	if len(t.body.Destinations) > 0 {
		return len(t.body.Destinations)
	}
	if len(t.body.Durations) > 0 {
		return len(t.body.Durations[0])
	}
	if len(t.body.Distances) > 0 {
		return len(t.body.Distances[0])
	}
	return 0
}

func matrixCell(matrix [][]cell, what string, from, to int) (float64, error) {
	if matrix == nil {
		return 0, errors.Newf(errors.CodeNoTable, "response carries no %s matrix", what)
	}
	if from < 0 || from >= len(matrix) {
		return 0, errors.IndexOutOfRange("Source", from, len(matrix))
	}
	row := matrix[from]
	if to < 0 || to >= len(row) {
		return 0, errors.IndexOutOfRange("Destination", to, len(row))
	}
	return float64(row[to]), nil
}

// Duration returns the travel time from source from to destination to,
// in seconds. Unreachable pairs return +Inf, not an error.
func (t *Table) Duration(from, to int) (float64, error) {
	return matrixCell(t.body.Durations, "duration", from, to)
}

// Distance returns the travel distance from source from to destination
// to, in meters. Unreachable pairs return +Inf, not an error.
func (t *Table) Distance(from, to int) (float64, error) {
	return matrixCell(t.body.Distances, "distance", from, to)
}

func matrixCopy(matrix [][]cell, what string) ([][]float64, error) {
	if matrix == nil {
		return nil, errors.Newf(errors.CodeNoTable, "response carries no %s matrix", what)
	}
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		out[i] = make([]float64, len(row))
		for j, c := range row {
			out[i][j] = float64(c)
		}
	}
	return out, nil
}

// DurationMatrix returns a copy of the full duration matrix with +Inf
// for unreachable pairs.
func (t *Table) DurationMatrix() ([][]float64, error) {
	return matrixCopy(t.body.Durations, "duration")
}

// DistanceMatrix returns a copy of the full distance matrix with +Inf
// for unreachable pairs.
func (t *Table) DistanceMatrix() ([][]float64, error) {
	return matrixCopy(t.body.Distances, "distance")
}

// Reachable reports whether the pair has a finite duration. It needs
// the duration matrix.
func (t *Table) Reachable(from, to int) (bool, error) {
	d, err := t.Duration(from, to)
	if err != nil {
		return false, err
	}
	return !math.IsInf(d, 1), nil
}

// FallbackSpeedCells returns the (from, to) pairs whose values are
// straight-line fallback estimates rather than routed results.
func (t *Table) FallbackSpeedCells() [][2]int {
	out := make([][2]int, len(t.body.FallbackSpeedCells))
	for i, c := range t.body.FallbackSpeedCells {
		out[i] = [2]int(c)
	}
	return out
}
