package log

import (
	"time"
)

// Event represents a bridge log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"2,keyasint"`

	// DeviceName is the vendor device name, if the event concerns a device.
	DeviceName string `cbor:"3,keyasint,omitempty"`

	// DeviceType is the raw vendor device type string.
	DeviceType string `cbor:"4,keyasint,omitempty"`

	// EntityID is the platform entity identifier, if one exists yet.
	EntityID string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Discovery    *DiscoveryEvent    `cbor:"10,keyasint,omitempty"`
	Command      *CommandEvent      `cbor:"11,keyasint,omitempty"`
	StateRefresh *StateRefreshEvent `cbor:"12,keyasint,omitempty"`
	Error        *ErrorEventData    `cbor:"13,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDiscovery indicates a device discovery decision.
	CategoryDiscovery Category = 0
	// CategoryCommand indicates a command issued to a vendor device.
	CategoryCommand Category = 1
	// CategoryStateRefresh indicates an entity state recomputation.
	CategoryStateRefresh Category = 2
	// CategoryError indicates a failure.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDiscovery:
		return "DISCOVERY"
	case CategoryCommand:
		return "COMMAND"
	case CategoryStateRefresh:
		return "STATE_REFRESH"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// DiscoveryEvent records the outcome of classifying an announced device.
type DiscoveryEvent struct {
	// Topic is the discovery topic the announcement arrived on.
	Topic string `cbor:"1,keyasint,omitempty"`

	// Classification is the category the device type mapped to
	// (empty when the type is unknown).
	Classification string `cbor:"2,keyasint,omitempty"`

	// Claimed indicates whether an entity was constructed for the device.
	Claimed bool `cbor:"3,keyasint"`

	// Reason explains why a device was skipped.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// CommandEvent records a command issued to the vendor device.
type CommandEvent struct {
	// Name is the vendor command name (e.g. "set_mist_level").
	Name string `cbor:"1,keyasint"`

	// Argument is the command argument rendered as a string, if any.
	Argument string `cbor:"2,keyasint,omitempty"`
}

// StateRefreshEvent records a recomputed entity state snapshot.
type StateRefreshEvent struct {
	// State is the display state ("on"/"off").
	State string `cbor:"1,keyasint,omitempty"`

	// Mode is the reported platform mode, empty when unknown.
	Mode string `cbor:"2,keyasint,omitempty"`

	// TargetHumidity is the auto-humidity setpoint in percent.
	TargetHumidity int `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData records a failure.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what the bridge was doing (e.g. "state refresh").
	Context string `cbor:"2,keyasint,omitempty"`
}

// NewDiscoveryEvent builds a discovery event for a device decision.
func NewDiscoveryEvent(deviceName, deviceType string, d DiscoveryEvent) Event {
	return Event{
		Timestamp:  time.Now(),
		Category:   CategoryDiscovery,
		DeviceName: deviceName,
		DeviceType: deviceType,
		Discovery:  &d,
	}
}

// NewCommandEvent builds a command event for a vendor command.
func NewCommandEvent(deviceName, name, argument string) Event {
	return Event{
		Timestamp:  time.Now(),
		Category:   CategoryCommand,
		DeviceName: deviceName,
		Command:    &CommandEvent{Name: name, Argument: argument},
	}
}

// NewStateRefreshEvent builds a state refresh event for an entity.
func NewStateRefreshEvent(entityID string, s StateRefreshEvent) Event {
	return Event{
		Timestamp:    time.Now(),
		Category:     CategoryStateRefresh,
		EntityID:     entityID,
		StateRefresh: &s,
	}
}

// NewErrorEvent builds an error event.
func NewErrorEvent(entityID, context string, err error) Event {
	return Event{
		Timestamp: time.Now(),
		Category:  CategoryError,
		EntityID:  entityID,
		Error:     &ErrorEventData{Message: err.Error(), Context: context},
	}
}
