package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PostcodeA != "BS1 6Q" {
		t.Errorf("PostcodeA = %q, want %q", cfg.PostcodeA, "BS1 6Q")
	}
	if cfg.PostcodeB != "B1 2HL" {
		t.Errorf("PostcodeB = %q, want %q", cfg.PostcodeB, "B1 2HL")
	}
	if cfg.ServiceBaseURL != "http://api.postcodes.io" {
		t.Errorf("ServiceBaseURL = %q", cfg.ServiceBaseURL)
	}
	if cfg.LogPath != "log.txt" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.LookupTimeout != 10*time.Second {
		t.Errorf("LookupTimeout = %s, want 10s", cfg.LookupTimeout)
	}
	if cfg.RecordSink != SinkFile {
		t.Errorf("RecordSink = %q, want %q", cfg.RecordSink, SinkFile)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"POSTCODE_A":       "SW1A 1AA",
		"SERVICE_BASE_URL": "http://localhost:8000",
		"LOOKUP_TIMEOUT":   "2s",
		"RECORD_SINK":      " SQLite ",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PostcodeA != "SW1A 1AA" {
		t.Errorf("PostcodeA = %q", cfg.PostcodeA)
	}
	if cfg.ServiceBaseURL != "http://localhost:8000" {
		t.Errorf("ServiceBaseURL = %q", cfg.ServiceBaseURL)
	}
	if cfg.LookupTimeout != 2*time.Second {
		t.Errorf("LookupTimeout = %s", cfg.LookupTimeout)
	}
	if cfg.RecordSink != SinkSqlite {
		t.Errorf("RecordSink = %q, want %q", cfg.RecordSink, SinkSqlite)
	}
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown sink", map[string]string{"RECORD_SINK": "kafka"}, "unknown RECORD_SINK"},
		{"postgres without url", map[string]string{"RECORD_SINK": "postgres"}, "DATABASE_URL"},
		{"non-positive timeout", map[string]string{"LOOKUP_TIMEOUT": "0s"}, "LOOKUP_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(tt.env))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
