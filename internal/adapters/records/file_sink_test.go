package records

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"postcode-distance/internal/domain"
	"strings"
	"testing"
	"time"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %q: %v", path, err)
	}
	defer f.Close()

	var out []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := map[string]any{}
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan %q: %v", path, err)
	}
	return out
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte(`{"message":"earlier run"}`+"\n"), 0o644); err != nil {
		t.Fatalf("seed log file: %v", err)
	}

	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()

	if err := sink.Record(ctx, domain.CalculationRecord{
		Success:    true,
		Detail:     "Success of the calculation of the distance. Distance: 76.9",
		PostcodeA:  "BS1 6Q",
		PostcodeB:  "B1 2HL",
		Miles:      76.9,
		RecordedAt: at,
	}); err != nil {
		t.Fatalf("record success: %v", err)
	}
	if err := sink.Record(ctx, domain.CalculationRecord{
		Success:    false,
		Detail:     "Calculation of the distance failed",
		PostcodeA:  "XX1 1XX",
		PostcodeB:  "B1 2HL",
		RecordedAt: at,
	}); err != nil {
		t.Fatalf("record failure: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if lines[0]["message"] != "earlier run" {
		t.Errorf("existing content overwritten: %v", lines[0])
	}

	if lines[1]["success"] != true || lines[1]["miles"] != 76.9 || lines[1]["postcode_a"] != "BS1 6Q" {
		t.Errorf("unexpected success line: %v", lines[1])
	}

	if lines[2]["success"] != false || lines[2]["message"] != "Calculation of the distance failed" {
		t.Errorf("unexpected failure line: %v", lines[2])
	}
	if _, ok := lines[2]["miles"]; ok {
		t.Errorf("failure line should not carry miles: %v", lines[2])
	}
}

func TestFileSinkUnwritablePath(t *testing.T) {
	sink, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "log.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sink.Record(context.Background(), domain.CalculationRecord{Detail: "x"}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestFileSinkReportsWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	sink, err := NewFileSink("/dev/full")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = sink.Record(context.Background(), domain.CalculationRecord{
		Success:   true,
		Detail:    "Success of the calculation of the distance. Distance: 1",
		PostcodeA: "BS1 6Q",
		PostcodeB: "B1 2HL",
		Miles:     1,
	})
	if err == nil {
		t.Fatal("expected error writing to a full device")
	}
	if !strings.Contains(err.Error(), "write") {
		t.Fatalf("error %q does not mention the failed write", err)
	}
}

func TestNewFileSinkRejectsEmptyPath(t *testing.T) {
	if _, err := NewFileSink(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
