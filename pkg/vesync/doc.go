// Package vesync defines the vendor device surface the bridge adapts.
//
// The bridge does not talk to the VeSync cloud itself; it holds non-owning
// references to device objects that satisfy the interfaces here and issues
// commands through them. The real transport (HTTP session, authentication,
// retries) lives in the vendor SDK behind those objects.
//
// The package also carries the classification table mapping raw vendor
// device-type strings to the coarse category ("humidifier", "fan") that
// decides which entity platform claims a discovered device, and a
// SimulatedHumidifier used by the bridge daemon's simulation mode and by
// tests.
package vesync
