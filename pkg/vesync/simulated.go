package vesync

import (
	"fmt"
	"sync"
)

// SimulatedHumidifier is an in-process humidifier used by the bridge
// daemon's simulation mode and by tests. It applies commands to local
// state with the same validation a real device performs, without any
// network I/O. Safe for concurrent use.
type SimulatedHumidifier struct {
	mu sync.Mutex

	name       string
	deviceType string
	caps       Capabilities

	on           bool
	mode         string
	mistLevel    int
	autoHumidity int
	nightLight   bool
}

// NewSimulatedHumidifier creates a simulated humidifier. The capability
// descriptor is copied; later mutation of the argument does not affect
// the device.
func NewSimulatedHumidifier(name, deviceType string, caps Capabilities) *SimulatedHumidifier {
	c := Capabilities{
		MistModes:  append([]string(nil), caps.MistModes...),
		MistLevels: append([]int(nil), caps.MistLevels...),
		NightLight: caps.NightLight,
	}
	return &SimulatedHumidifier{
		name:         name,
		deviceType:   deviceType,
		caps:         c,
		autoHumidity: 45,
	}
}

// DeviceName returns the device name.
func (s *SimulatedHumidifier) DeviceName() string { return s.name }

// DeviceType returns the vendor device-type string.
func (s *SimulatedHumidifier) DeviceType() string { return s.deviceType }

// Capabilities returns the capability descriptor.
func (s *SimulatedHumidifier) Capabilities() Capabilities { return s.caps }

// Mode returns the current vendor mode, "" before any mode command.
func (s *SimulatedHumidifier) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// MistVirtualLevel returns the current mist level.
func (s *SimulatedHumidifier) MistVirtualLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mistLevel
}

// AutoHumidity returns the auto-humidity setpoint.
func (s *SimulatedHumidifier) AutoHumidity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoHumidity
}

// IsOn reports whether the device is powered on.
func (s *SimulatedHumidifier) IsOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// NightLight returns the night light state.
func (s *SimulatedHumidifier) NightLight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nightLight
}

// SetNightLight sets the night light state directly (simulation control,
// not part of the Humidifier command surface).
func (s *SimulatedHumidifier) SetNightLight(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nightLight = on
}

// ForceMode overwrites the reported vendor mode without validation
// (simulation control, for reproducing firmware quirks).
func (s *SimulatedHumidifier) ForceMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// TurnOn powers the device on.
func (s *SimulatedHumidifier) TurnOn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.on = true
	return nil
}

// SetAutoMode switches to automatic humidity control.
func (s *SimulatedHumidifier) SetAutoMode() error {
	return s.SetHumidityMode("auto")
}

// SetHumidityMode switches to the named humidity mode.
func (s *SimulatedHumidifier) SetHumidityMode(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.caps.SupportsMistMode(mode) {
		return fmt.Errorf("%s: mist mode %q not supported", s.name, mode)
	}
	s.mode = mode
	return nil
}

// SetMistLevel switches to manual mode at the given level.
func (s *SimulatedHumidifier) SetMistLevel(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.caps.SupportsMistMode("manual") {
		return fmt.Errorf("%s: manual mode not supported", s.name)
	}
	if !s.caps.SupportsMistLevel(level) {
		return fmt.Errorf("%s: mist level %d not supported", s.name, level)
	}
	s.mode = "manual"
	s.mistLevel = level
	return nil
}

// SetHumidity sets the auto-humidity setpoint. The value is stored as
// given; range policy belongs to the caller.
func (s *SimulatedHumidifier) SetHumidity(humidity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoHumidity = humidity
	return nil
}

// Compile-time interface satisfaction check.
var _ Humidifier = (*SimulatedHumidifier)(nil)
