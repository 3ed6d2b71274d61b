// Package humidifier adapts VeSync smart humidifiers to the platform's
// generic humidifier entity.
//
// The adapter is a translation layer: it derives the available platform
// modes from the device capability descriptor once at construction, maps
// the device's live vendor mode and mist level to a platform mode on every
// read, and maps requested platform modes back to vendor commands on
// write. It holds a non-owning reference to the vendor device and performs
// no network I/O of its own.
//
// # Mode Mapping
//
// Vendor modes are "auto", "sleep" and "manual"; manual intensity is a
// discrete mist level. On read, manual level 1 reports as eco, the highest
// supported level as boost, and anything between as normal. On write, eco,
// normal and boost select mist levels 1, 5 and 9 respectively.
//
// Reads of a vendor mode outside the known vocabulary fail with
// UnsupportedModeError; writes of an unknown platform mode are silently
// ignored.
package humidifier
