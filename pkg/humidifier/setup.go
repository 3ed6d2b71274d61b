package humidifier

import (
	"github.com/vesync-bridge/vesync-go/pkg/log"
	"github.com/vesync-bridge/vesync-go/pkg/platform"
	"github.com/vesync-bridge/vesync-go/pkg/vesync"
)

// Setup wires the humidifier platform into the host: it subscribes to
// the humidifier discovery topic and registers an entity for every
// humidifier-classified device, starting with the initial device list.
// The returned function cancels the discovery subscription.
func Setup(bus *platform.Dispatcher, add platform.AddEntitiesFunc, initial []vesync.Device, logger log.Logger) func() {
	if logger == nil {
		logger = log.NoopLogger{}
	}

	topic := vesync.DiscoveryTopic(vesync.KindHumidifiers)

	unsubscribe := bus.Connect(topic, func(payload any) {
		devices, ok := payload.([]vesync.Device)
		if !ok {
			logger.Log(log.NewDiscoveryEvent("", "", log.DiscoveryEvent{
				Topic:  topic,
				Reason: "unexpected discovery payload",
			}))
			return
		}
		setupEntities(devices, add, topic, logger)
	})

	setupEntities(initial, add, topic, logger)

	return unsubscribe
}

// setupEntities classifies announced devices and constructs one entity
// per humidifier. Fan-classified devices belong to the fan platform and
// are skipped quietly; anything else is logged and skipped - discovery
// never fails as a whole.
func setupEntities(devices []vesync.Device, add platform.AddEntitiesFunc, topic string, logger log.Logger) {
	var entities []platform.Entity
	for _, dev := range devices {
		category := vesync.DeviceCategory(dev.DeviceType())

		switch category {
		case vesync.CategoryHumidifier:
			h, ok := dev.(vesync.Humidifier)
			if !ok {
				logger.Log(log.NewDiscoveryEvent(dev.DeviceName(), dev.DeviceType(), log.DiscoveryEvent{
					Topic:          topic,
					Classification: category,
					Reason:         "device does not expose the humidifier surface",
				}))
				continue
			}
			entities = append(entities, New(h, logger))
			logger.Log(log.NewDiscoveryEvent(dev.DeviceName(), dev.DeviceType(), log.DiscoveryEvent{
				Topic:          topic,
				Classification: category,
				Claimed:        true,
			}))

		case vesync.CategoryFan:
			// Owned by the fan platform.
			continue

		default:
			logger.Log(log.NewDiscoveryEvent(dev.DeviceName(), dev.DeviceType(), log.DiscoveryEvent{
				Topic:          topic,
				Classification: category,
				Reason:         "unknown device type",
			}))
		}
	}

	add(entities, true)
}
