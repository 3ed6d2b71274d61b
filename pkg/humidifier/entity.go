package humidifier

import (
	"strconv"

	"github.com/vesync-bridge/vesync-go/pkg/log"
	"github.com/vesync-bridge/vesync-go/pkg/platform"
	"github.com/vesync-bridge/vesync-go/pkg/vesync"
)

// Target humidity bounds in percent. The entity reports these as fixed
// constants; it does not clamp setpoints against them.
const (
	MinHumidity = 30
	MaxHumidity = 80
)

// Entity adapts a VeSync humidifier device to the platform's humidifier
// entity. It holds a non-owning reference to the device; all commands are
// delegated to it synchronously, followed by a non-blocking refresh
// request.
type Entity struct {
	platform.BaseEntity

	device vesync.Humidifier
	logger log.Logger

	// Derived once at construction, immutable thereafter.
	availableModes []Mode
	maxMistLevel   int
	hasNightLight  bool
}

// New creates a humidifier entity for a device. The available-mode list
// is derived from the device capability descriptor here and never
// recomputed. A nil logger disables event logging.
func New(device vesync.Humidifier, logger log.Logger) *Entity {
	if logger == nil {
		logger = log.NoopLogger{}
	}

	caps := device.Capabilities()

	// Freshly allocated per entity; never shared between instances.
	modes := []Mode{}
	if caps.SupportsMistMode(mistModeAuto) {
		modes = append(modes, ModeAuto)
	}
	if caps.SupportsMistMode(mistModeSleep) {
		modes = append(modes, ModeSleep)
	}
	if caps.SupportsMistMode(mistModeManual) {
		modes = append(modes, ModeNormal)
		if len(caps.MistLevels) > 2 {
			modes = append(modes, ModeEco, ModeBoost)
		}
	}

	return &Entity{
		BaseEntity: platform.NewBaseEntity(
			device.DeviceName(),
			device.DeviceName(),
			platform.DeviceClassHumidifier,
		),
		device:         device,
		logger:         logger,
		availableModes: modes,
		maxMistLevel:   caps.MaxMistLevel(),
		hasNightLight:  caps.NightLight,
	}
}

// AvailableModes returns the platform modes this device supports, in
// fixed order: auto, sleep, normal, eco, boost.
func (e *Entity) AvailableModes() []Mode {
	return append([]Mode(nil), e.availableModes...)
}

// Mode derives the current platform mode from the device's live vendor
// mode and mist level. An empty vendor mode reads as no mode ("", nil).
// A vendor mode outside the known vocabulary fails with
// *UnsupportedModeError.
func (e *Entity) Mode() (Mode, error) {
	switch vendorMode := e.device.Mode(); vendorMode {
	case "":
		return "", nil
	case mistModeAuto:
		return ModeAuto, nil
	case mistModeSleep:
		return ModeSleep, nil
	case mistModeManual:
		switch level := e.device.MistVirtualLevel(); {
		case level == 1:
			return ModeEco, nil
		case level == e.maxMistLevel:
			return ModeBoost, nil
		default:
			return ModeNormal, nil
		}
	default:
		return "", &UnsupportedModeError{VendorMode: vendorMode}
	}
}

// SetMode dispatches the vendor command for a requested platform mode
// and schedules a state refresh. Unrecognized modes are ignored, not
// errors; the refresh is still scheduled.
func (e *Entity) SetMode(mode Mode) error {
	var err error
	switch mode {
	case ModeAuto:
		e.logCommand("set_auto_mode", "")
		err = e.device.SetAutoMode()
	case ModeSleep:
		e.logCommand("set_humidity_mode", mistModeSleep)
		err = e.device.SetHumidityMode(mistModeSleep)
	case ModeEco:
		e.logCommand("set_mist_level", strconv.Itoa(mistLevelEco))
		err = e.device.SetMistLevel(mistLevelEco)
	case ModeNormal:
		e.logCommand("set_mist_level", strconv.Itoa(mistLevelNormal))
		err = e.device.SetMistLevel(mistLevelNormal)
	case ModeBoost:
		e.logCommand("set_mist_level", strconv.Itoa(mistLevelBoost))
		err = e.device.SetMistLevel(mistLevelBoost)
	}
	if err != nil {
		return err
	}

	e.RequestRefresh()
	return nil
}

// TargetHumidity returns the device's auto-humidity setpoint in percent.
func (e *Entity) TargetHumidity() int {
	return e.device.AutoHumidity()
}

// SetHumidity sets the target humidity, powering the device on first if
// needed, and schedules a state refresh. The value is forwarded to the
// device unvalidated.
func (e *Entity) SetHumidity(humidity int) error {
	if !e.device.IsOn() {
		e.logCommand("turn_on", "")
		if err := e.device.TurnOn(); err != nil {
			return err
		}
	}

	e.logCommand("set_humidity", strconv.Itoa(humidity))
	if err := e.device.SetHumidity(humidity); err != nil {
		return err
	}

	e.RequestRefresh()
	return nil
}

// TurnOnOption configures TurnOn.
type TurnOnOption func(*turnOnRequest)

type turnOnRequest struct {
	humidity *int
	mode     *Mode
}

// WithHumidity requests a target humidity after power-on.
func WithHumidity(humidity int) TurnOnOption {
	return func(r *turnOnRequest) { r.humidity = &humidity }
}

// WithMode requests a mode after power-on.
func WithMode(mode Mode) TurnOnOption {
	return func(r *turnOnRequest) { r.mode = &mode }
}

// TurnOn powers the device on, then applies the humidity and mode
// options only when supplied.
func (e *Entity) TurnOn(opts ...TurnOnOption) error {
	var req turnOnRequest
	for _, opt := range opts {
		opt(&req)
	}

	e.logCommand("turn_on", "")
	if err := e.device.TurnOn(); err != nil {
		return err
	}

	if req.humidity != nil {
		if err := e.SetHumidity(*req.humidity); err != nil {
			return err
		}
	}
	if req.mode != nil {
		if err := e.SetMode(*req.mode); err != nil {
			return err
		}
	}
	return nil
}

// State recomputes the displayed-state snapshot from live device state.
// An unsupported vendor mode fails the whole read.
func (e *Entity) State() (platform.State, error) {
	mode, err := e.Mode()
	if err != nil {
		return platform.State{}, err
	}

	state := platform.StateOff
	if e.device.IsOn() {
		state = platform.StateOn
	}

	modes := make([]string, len(e.availableModes))
	for i, m := range e.availableModes {
		modes[i] = string(m)
	}

	attrs := map[string]any{
		platform.AttrMode:           string(mode),
		platform.AttrHumidity:       e.device.AutoHumidity(),
		platform.AttrAvailableModes: modes,
		platform.AttrMinHumidity:    MinHumidity,
		platform.AttrMaxHumidity:    MaxHumidity,
	}
	// Key absent entirely when the device has no night light.
	if e.hasNightLight {
		attrs[platform.AttrNightLight] = e.device.NightLight()
	}

	return platform.State{State: state, Attributes: attrs}, nil
}

func (e *Entity) logCommand(name, argument string) {
	e.logger.Log(log.NewCommandEvent(e.device.DeviceName(), name, argument))
}

// Compile-time interface satisfaction check.
var _ platform.Entity = (*Entity)(nil)
