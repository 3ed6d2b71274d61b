package log

import (
	"errors"
	"testing"
	"time"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryDiscovery, "DISCOVERY"},
		{CategoryCommand, "COMMAND"},
		{CategoryStateRefresh, "STATE_REFRESH"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	t.Run("Discovery", func(t *testing.T) {
		e := NewDiscoveryEvent("Bedroom Humidifier", "Classic300S", DiscoveryEvent{
			Topic:          "vesync_discovery_humidifiers",
			Classification: "humidifier",
			Claimed:        true,
		})
		if e.Category != CategoryDiscovery {
			t.Errorf("category = %v, want CategoryDiscovery", e.Category)
		}
		if e.Discovery == nil || !e.Discovery.Claimed {
			t.Error("expected claimed discovery payload")
		}
		if e.DeviceName != "Bedroom Humidifier" || e.DeviceType != "Classic300S" {
			t.Errorf("unexpected identifiers: %q %q", e.DeviceName, e.DeviceType)
		}
	})

	t.Run("Command", func(t *testing.T) {
		e := NewCommandEvent("Bedroom Humidifier", "set_mist_level", "9")
		if e.Category != CategoryCommand {
			t.Errorf("category = %v, want CategoryCommand", e.Category)
		}
		if e.Command.Name != "set_mist_level" || e.Command.Argument != "9" {
			t.Errorf("unexpected command payload: %+v", e.Command)
		}
	})

	t.Run("Error", func(t *testing.T) {
		e := NewErrorEvent("Bedroom Humidifier", "state refresh", errors.New("boom"))
		if e.Category != CategoryError {
			t.Errorf("category = %v, want CategoryError", e.Category)
		}
		if e.Error.Message != "boom" || e.Error.Context != "state refresh" {
			t.Errorf("unexpected error payload: %+v", e.Error)
		}
	})
}

func TestEncodeDecodeEvent(t *testing.T) {
	event := Event{
		Timestamp:  time.Now().UTC(),
		Category:   CategoryStateRefresh,
		EntityID:   "Bedroom Humidifier",
		DeviceName: "Bedroom Humidifier",
		StateRefresh: &StateRefreshEvent{
			State:          "on",
			Mode:           "auto",
			TargetHumidity: 45,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent() error = %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	if decoded.Category != event.Category {
		t.Errorf("category = %v, want %v", decoded.Category, event.Category)
	}
	if decoded.EntityID != event.EntityID {
		t.Errorf("entity ID = %q, want %q", decoded.EntityID, event.EntityID)
	}
	if decoded.StateRefresh == nil {
		t.Fatal("state refresh payload missing after round trip")
	}
	if *decoded.StateRefresh != *event.StateRefresh {
		t.Errorf("state refresh = %+v, want %+v", decoded.StateRefresh, event.StateRefresh)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp = %v, want %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestDecodeEventInvalid(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00, 0x01}); err == nil {
		t.Error("expected error decoding garbage bytes")
	}
}
