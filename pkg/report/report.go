package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/propkit/propkit/pkg/metadata"
	"github.com/propkit/propkit/pkg/validation"
)

// Row pairs one validated container with the messages its validation run
// produced, in emission order.
type Row struct {
	Container *metadata.Container
	Messages  []validation.Message
}

// Report is the immutable result of validating a batch of containers.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Rows        []Row
}

// Build assembles a report from containers and their per-container validation
// results. The two slices are parallel; a length mismatch fails with
// ErrRowMismatch.
func Build(containers []*metadata.Container, results [][]validation.Message) (Report, error) {
	if len(containers) != len(results) {
		return Report{}, errors.Join(ErrRowMismatch,
			fmt.Errorf("%d containers, %d result sets", len(containers), len(results)))
	}
	rows := make([]Row, len(containers))
	for i := range containers {
		rows[i] = Row{Container: containers[i], Messages: results[i]}
	}
	return Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}, nil
}

// Errors counts messages with error severity across all rows.
func (r Report) Errors() int {
	return r.count(validation.SeverityError)
}

// Warnings counts messages with warning severity across all rows.
func (r Report) Warnings() int {
	return r.count(validation.SeverityWarning)
}

func (r Report) count(sev validation.Severity) int {
	n := 0
	for _, row := range r.Rows {
		for _, m := range row.Messages {
			if m.Severity == sev {
				n++
			}
		}
	}
	return n
}
