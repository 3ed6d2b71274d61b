package log

import (
	"path/filepath"
	"sync"
	"testing"
)

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.vlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Log(NewCommandEvent("Bedroom Humidifier", "set_auto_mode", ""))
	logger.Log(NewCommandEvent("Bedroom Humidifier", "set_mist_level", "1"))
	logger.Log(NewStateRefreshEvent("Bedroom Humidifier", StateRefreshEvent{
		State: "on", Mode: "eco", TargetHumidity: 40,
	}))

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Logging after close is silently ignored
	logger.Log(NewCommandEvent("Bedroom Humidifier", "turn_on", ""))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Command.Name != "set_auto_mode" {
		t.Errorf("first command = %q, want set_auto_mode", events[0].Command.Name)
	}
	if events[2].StateRefresh == nil || events[2].StateRefresh.Mode != "eco" {
		t.Errorf("unexpected third event: %+v", events[2])
	}
}

func TestFileLoggerFilteredRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.vlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	logger.Log(NewCommandEvent("Bedroom Humidifier", "turn_on", ""))
	logger.Log(NewCommandEvent("Office Humidifier", "set_humidity", "55"))
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reader, err := NewFilteredReader(path, Filter{DeviceName: "Office Humidifier"})
	if err != nil {
		t.Fatalf("NewFilteredReader() error = %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Command.Name != "set_humidity" || events[0].Command.Argument != "55" {
		t.Errorf("unexpected event: %+v", events[0].Command)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.vlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(NewCommandEvent("Bedroom Humidifier", "set_mist_level", "5"))
			}
		}()
	}
	wg.Wait()

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(events) != 200 {
		t.Errorf("got %d events, want 200", len(events))
	}
}
