package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/rs/zerolog"
)

const maxLineSize = 16 * 1024 * 1024

// InputRecord is one JSON line of the batch input. Error is set when the line
// could not be decoded; LineNumber is 1-based.
type InputRecord struct {
	LineNumber int
	Request    models.SolveRequest
	Error      error
}

type Reader struct {
	r      io.Reader
	logger *zerolog.Logger
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		r:      r,
		logger: logger,
	}
}

// ReadAll streams the records of the input. Blank lines are skipped but still
// counted, so line numbers match the file.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	records := make(chan InputRecord)

	go func() {
		defer close(records)

		scanner := bufio.NewScanner(r.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal([]byte(line), &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: invalid solve request: %w", lineNumber, err)
				r.logger.Warn().Int("line", lineNumber).Err(err).Msg("Skipping malformed record")
			} else if record.Request.RequestID == "" {
				record.Request.RequestID = fmt.Sprintf("line-%d", lineNumber)
			}

			select {
			case records <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case records <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("failed to read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return records
}
