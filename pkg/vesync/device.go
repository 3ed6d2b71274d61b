package vesync

// Capabilities describes what a humidifier device supports.
// It is read once at entity construction and fixed for the entity's
// lifetime. NightLight is an explicit flag rather than something probed
// at runtime.
type Capabilities struct {
	// MistModes is the set of supported vendor mist modes
	// (subset of {"auto", "sleep", "manual"}).
	MistModes []string

	// MistLevels is the ordered set of supported mist levels
	// (positive integers, ascending).
	MistLevels []int

	// NightLight indicates the device exposes a night light.
	NightLight bool
}

// SupportsMistMode reports whether the given vendor mode is supported.
func (c Capabilities) SupportsMistMode(mode string) bool {
	for _, m := range c.MistModes {
		if m == mode {
			return true
		}
	}
	return false
}

// SupportsMistLevel reports whether the given mist level is supported.
func (c Capabilities) SupportsMistLevel(level int) bool {
	for _, l := range c.MistLevels {
		if l == level {
			return true
		}
	}
	return false
}

// MaxMistLevel returns the highest supported mist level, or 0 when the
// level set is empty.
func (c Capabilities) MaxMistLevel() int {
	max := 0
	for _, l := range c.MistLevels {
		if l > max {
			max = l
		}
	}
	return max
}

// Device is the minimal surface every vendor device exposes.
type Device interface {
	// DeviceName returns the user-visible device name.
	DeviceName() string

	// DeviceType returns the raw vendor device-type string (SKU).
	DeviceType() string
}

// Humidifier is the surface a smart humidifier device exposes to the
// bridge. Commands are synchronous; the vendor SDK performs its own
// network I/O and locking behind them.
type Humidifier interface {
	Device

	// Capabilities returns the device capability descriptor.
	Capabilities() Capabilities

	// Mode returns the current vendor mode string, or "" when the
	// device has not reported one.
	Mode() string

	// MistVirtualLevel returns the current mist level. Only meaningful
	// in manual mode.
	MistVirtualLevel() int

	// AutoHumidity returns the current auto-humidity setpoint in percent.
	AutoHumidity() int

	// IsOn reports whether the device is powered on.
	IsOn() bool

	// NightLight returns the night light state. Only meaningful when
	// Capabilities().NightLight is true.
	NightLight() bool

	// TurnOn powers the device on.
	TurnOn() error

	// SetAutoMode switches the device to automatic humidity control.
	SetAutoMode() error

	// SetHumidityMode switches the device to the named humidity mode
	// (e.g. "sleep").
	SetHumidityMode(mode string) error

	// SetMistLevel switches the device to manual mode at the given level.
	SetMistLevel(level int) error

	// SetHumidity sets the auto-humidity setpoint in percent.
	SetHumidity(humidity int) error
}
