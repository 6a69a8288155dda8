package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL = "jsonl"
	FormatText  = "text"
)

// Writer serialises results either as JSON lines or as the one-line-per-part
// text the CLI prints.
type Writer struct {
	buf     *bufio.Writer
	format  string
	encoder *json.Encoder
	logger  *zerolog.Logger
	written int
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatText {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	buf := bufio.NewWriter(w)
	return &Writer{
		buf:     buf,
		format:  format,
		encoder: json.NewEncoder(buf),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.SolveResult) error {
	defer func() { w.written++ }()

	if w.format == FormatJSONL {
		return w.encoder.Encode(result)
	}

	if result.Error != "" {
		_, err := fmt.Fprintf(w.buf, "%s: error: %s\n", result.ID, result.Error)
		return err
	}
	for _, part := range result.Parts {
		if _, err := fmt.Fprintln(w.buf, part.Line(result.Day)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Close() error {
	w.logger.Debug().Int("results", w.written).Msg("Flushing batch output")
	return w.buf.Flush()
}
