package humidifier

import "fmt"

// Mode is a platform-level humidifier mode.
type Mode string

// Platform mode vocabulary.
const (
	ModeAuto   Mode = "auto"
	ModeSleep  Mode = "sleep"
	ModeNormal Mode = "normal"
	ModeEco    Mode = "eco"
	ModeBoost  Mode = "boost"
)

// Vendor mist modes.
const (
	mistModeAuto   = "auto"
	mistModeSleep  = "sleep"
	mistModeManual = "manual"
)

// Mist levels selected by write-side mode mapping.
const (
	mistLevelEco    = 1
	mistLevelNormal = 5
	mistLevelBoost  = 9
)

// UnsupportedModeError reports a vendor mode string outside the known
// vocabulary. It surfaces on reads only; the offending mode must never be
// silently mapped to a default.
type UnsupportedModeError struct {
	// VendorMode is the offending vendor mode string.
	VendorMode string
}

// Error returns the error message naming the offending mode.
func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("%q is not a supported humidifier mode", e.VendorMode)
}
