package vesync

import "testing"

func TestDeviceCategory(t *testing.T) {
	tests := []struct {
		deviceType string
		want       string
	}{
		{"Classic300S", CategoryHumidifier},
		{"LUH-A601S-WUSB", CategoryHumidifier},
		{"LUH-A601S-WEUR", CategoryHumidifier},
		{"LV-PUR131S", CategoryFan},
		{"LV-RH131S", CategoryFan},
		{"ESW15-USA", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DeviceCategory(tt.deviceType); got != tt.want {
			t.Errorf("DeviceCategory(%q) = %q, want %q", tt.deviceType, got, tt.want)
		}
	}
}

func TestBaseDevice(t *testing.T) {
	if got := BaseDevice("LUH-A601S-WUSB"); got != "Classic300S" {
		t.Errorf("BaseDevice(LUH-A601S-WUSB) = %q, want Classic300S", got)
	}
	if got := BaseDevice("nope"); got != "" {
		t.Errorf("BaseDevice(nope) = %q, want empty", got)
	}
}

func TestDiscoveryTopic(t *testing.T) {
	if got := DiscoveryTopic(KindHumidifiers); got != "vesync_discovery_humidifiers" {
		t.Errorf("DiscoveryTopic(humidifiers) = %q", got)
	}
}
