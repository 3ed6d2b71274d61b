package vesync

import "fmt"

// Coarse device categories used to decide which entity platform claims a
// discovered device.
const (
	CategoryHumidifier = "humidifier"
	CategoryFan        = "fan"
)

// Discovery topic kinds. Announcements carry the full device list for the
// kind, not a delta.
const (
	KindHumidifiers = "humidifiers"
	KindFans        = "fans"
)

// DiscoveryTopic returns the dispatcher topic for a discovery kind.
func DiscoveryTopic(kind string) string {
	return fmt.Sprintf("vesync_discovery_%s", kind)
}

// skuToBaseDevice maps vendor SKUs (including regional variants) to the
// base device-type key used for category lookup.
var skuToBaseDevice = map[string]string{
	"Classic300S":    "Classic300S",
	"LUH-A601S-WUSB": "Classic300S",
	"LUH-A601S-WEUR": "Classic300S",
	"LV-PUR131S":     "LV-PUR131S",
	"LV-RH131S":      "LV-PUR131S",
}

// baseDeviceToCategory maps base device-type keys to coarse categories.
var baseDeviceToCategory = map[string]string{
	"Classic300S": CategoryHumidifier,
	"LV-PUR131S":  CategoryFan,
}

// BaseDevice returns the base device-type key for a vendor SKU, or ""
// when the SKU is unknown.
func BaseDevice(sku string) string {
	return skuToBaseDevice[sku]
}

// DeviceCategory returns the coarse category for a vendor device-type
// string, or "" when the type does not classify.
func DeviceCategory(deviceType string) string {
	return baseDeviceToCategory[BaseDevice(deviceType)]
}
