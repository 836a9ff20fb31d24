package docker

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/util"
)

// NotAvailable is shown for usage columns without a stats entry.
const NotAvailable = "N/A"

// Reason says why container data couldn't be shown.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotInstalled
	ReasonNotRunning
	ReasonTimeout
	ReasonError
	ReasonDisabled
)

// ProbeError is a classified container runtime failure.
type ProbeError struct {
	Reason Reason
	Err    error
}

func (e *ProbeError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Message is the one-line placeholder shown in the containers panel.
func (e *ProbeError) Message() string {
	switch e.Reason {
	case ReasonNotInstalled:
		return "Docker is not installed"
	case ReasonNotRunning:
		return "Docker not available or not running"
	case ReasonTimeout:
		return "Docker command timed out"
	case ReasonDisabled:
		return "Container monitoring disabled"
	default:
		detail := "unknown"
		if e.Err != nil {
			detail = util.Truncate(e.Err.Error(), 30)
		}
		return "Error: " + detail
	}
}

// Record is one container row ready for display.
type Record struct {
	Name    string
	Image   string
	Status  string
	CPU     string
	Memory  string
	Running bool
	// CPUPercent is CPU parsed as a number, 0 when not reported.
	CPUPercent float64
}

// Result is the outcome of one container query.
type Result struct {
	Containers []Record
	// Unavailable is set when the runtime couldn't be queried at all.
	Unavailable *ProbeError
	// Pending is true until the first query completes.
	Pending bool
}

// PendingResult is shown before the first query finishes.
func PendingResult() Result {
	return Result{Pending: true}
}

// Placeholder returns the text shown instead of a table, or "" when there
// are containers to show.
func (r Result) Placeholder() string {
	switch {
	case r.Pending:
		return "Querying containers…"
	case r.Unavailable != nil:
		return r.Unavailable.Message()
	case len(r.Containers) == 0:
		return "No running containers"
	default:
		return ""
	}
}

// Query lists containers and joins in their stats. A failed stats call
// leaves usage columns as N/A rather than hiding the containers.
func Query(ctx context.Context, probe Probe) (Result, error) {
	containers, err := probe.List(ctx)
	if err != nil {
		return Result{Unavailable: asProbeError(err)}, nil
	}
	if len(containers) == 0 {
		return Result{}, nil
	}

	stats, err := probe.Stats(ctx)
	var statsErr error
	if err != nil {
		stats = nil
		statsErr = errors.WrapWithCode(err, errors.ErrProbe,
			"Container stats unavailable",
			"Usage columns show N/A until 'docker stats' answers")
	}

	records := make([]Record, 0, len(containers))
	for _, c := range containers {
		s, ok := stats[c.Name]
		if !ok {
			s = Stats{CPU: NotAvailable, Memory: NotAvailable}
		}
		records = append(records, Record{
			Name:       c.Name,
			Image:      c.Image,
			Status:     statusWord(c.Status),
			CPU:        s.CPU,
			Memory:     s.Memory,
			Running:    isRunning(c.Status),
			CPUPercent: parseCPUPercent(s.CPU),
		})
	}
	return Result{Containers: records}, statsErr
}

func asProbeError(err error) *ProbeError {
	var pe *ProbeError
	if stderrors.As(err, &pe) {
		return pe
	}
	return &ProbeError{Reason: ReasonError, Err: err}
}
