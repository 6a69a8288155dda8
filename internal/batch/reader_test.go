package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestReader_InvalidFile(t *testing.T) {
	file := strings.NewReader("invalid file content")

	reader := NewReader(file, newTestLogger())
	ch := reader.ReadAll(context.Background())

	count := 0
	for record := range ch {
		count++
		if record.Error == nil {
			t.Errorf("expected parse error for invalid JSON, but got none")
		}
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestReader_ValidFile(t *testing.T) {
	inputFile := `{"request_id":"1","day":6,"part":1,"lines":["Time: 7 15 30","Distance: 9 40 200"]}
  {"request_id":"2","day":7,"lines":["32T3K 765","T55J5 684"]}`

	reader := NewReader(strings.NewReader(inputFile), newTestLogger())

	var records []InputRecord
	for record := range reader.ReadAll(context.Background()) {
		if record.Error != nil {
			t.Errorf("Error reading the solve request record. Got: %s", record.Error)
		}
		records = append(records, record)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 solve requests. Got: %d", len(records))
	}
	if records[0].Request.Day != 6 || records[0].Request.Part != 1 || len(records[0].Request.Lines) != 2 {
		t.Errorf("unexpected first request: %+v", records[0].Request)
	}
	if records[1].Request.Part != 0 {
		t.Errorf("expected omitted part to mean both parts, got %d", records[1].Request.Part)
	}
}

func TestReader_DefaultRequestID(t *testing.T) {
	inputFile := "\n" + `{"day":1,"lines":["1abc2"]}`

	reader := NewReader(strings.NewReader(inputFile), newTestLogger())
	for record := range reader.ReadAll(context.Background()) {
		if record.Request.RequestID != "line-2" {
			t.Errorf("expected generated id line-2, got %q", record.Request.RequestID)
		}
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, `{"request_id":"1","day":1,"lines":["1abc2"]}`)
	}
	file := strings.NewReader(strings.Join(lines, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	count := 0
	for range ch {
		count++
		if count == 5 {
			cancel()
			break
		}
	}

	if count >= 100 {
		t.Errorf("expected early cancellation, but read all records")
	}
}

func TestReader_LineNumbers(t *testing.T) {
	inputFile := `{"request_id":"1","day":1,"lines":["1abc2"]}

{"invalid json}
{"request_id":"2","day":1,"lines":["a1b2c3d4e5f"]}`

	reader := NewReader(strings.NewReader(inputFile), newTestLogger())

	records := []InputRecord{}
	for record := range reader.ReadAll(context.Background()) {
		records = append(records, record)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].LineNumber != 1 {
		t.Errorf("first record should be line 1, got %d", records[0].LineNumber)
	}
	if records[1].LineNumber != 3 || records[1].Error == nil {
		t.Errorf("error record should be line 3, got %d (err %v)", records[1].LineNumber, records[1].Error)
	}
	if records[2].LineNumber != 4 {
		t.Errorf("third record should be line 4, got %d", records[2].LineNumber)
	}
}
