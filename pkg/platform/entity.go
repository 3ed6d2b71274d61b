package platform

import "sync"

// Display states.
const (
	StateOn  = "on"
	StateOff = "off"
)

// Device classification tags.
const (
	DeviceClassHumidifier = "humidifier"
	DeviceClassFan        = "fan"
)

// Generic state attribute keys shared by climate entities.
const (
	AttrMode           = "mode"
	AttrHumidity       = "humidity"
	AttrAvailableModes = "available_modes"
	AttrMinHumidity    = "min_humidity"
	AttrMaxHumidity    = "max_humidity"
	AttrNightLight     = "night_light"
)

// State is a displayed-state snapshot of an entity.
type State struct {
	// State is the primary display state (e.g. "on", "off").
	State string

	// Attributes carries supplementary attributes by key. Optional
	// attributes are omitted entirely rather than set to nil.
	Attributes map[string]any
}

// Entity is the contract the registry expects from adapter entities.
type Entity interface {
	// Name returns the user-visible entity name.
	Name() string

	// UniqueID returns a stable identifier for the entity.
	UniqueID() string

	// DeviceClass returns the fixed device classification tag.
	DeviceClass() string

	// State recomputes the displayed-state snapshot from live device
	// state. Errors propagate to the registry's refresh error handling.
	State() (State, error)
}

// RefreshScheduler accepts non-blocking refresh requests for entities.
type RefreshScheduler interface {
	// ScheduleRefresh requests that the entity's displayed state be
	// recomputed later. Must not block; duplicate requests may be
	// coalesced.
	ScheduleRefresh(uniqueID string)
}

// SchedulerAware is implemented by entities that issue refresh requests.
// The registry binds itself to such entities when they are added.
type SchedulerAware interface {
	BindScheduler(RefreshScheduler)
}

// AddEntitiesFunc is the host callback that registers constructed
// entities. When updateBeforeAdd is set, each entity's state is
// recomputed before it first becomes visible.
type AddEntitiesFunc func(entities []Entity, updateBeforeAdd bool)

// BaseEntity carries the fixed identity of an adapter entity and its
// bound refresh scheduler. Embed it and call RequestRefresh after
// issuing device commands.
type BaseEntity struct {
	name        string
	uniqueID    string
	deviceClass string

	mu        sync.Mutex
	scheduler RefreshScheduler
}

// NewBaseEntity creates the embedded entity base.
func NewBaseEntity(name, uniqueID, deviceClass string) BaseEntity {
	return BaseEntity{name: name, uniqueID: uniqueID, deviceClass: deviceClass}
}

// Name returns the entity name.
func (b *BaseEntity) Name() string { return b.name }

// UniqueID returns the stable entity identifier.
func (b *BaseEntity) UniqueID() string { return b.uniqueID }

// DeviceClass returns the device classification tag.
func (b *BaseEntity) DeviceClass() string { return b.deviceClass }

// BindScheduler attaches the refresh scheduler. Called by the registry
// when the entity is added.
func (b *BaseEntity) BindScheduler(s RefreshScheduler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scheduler = s
}

// RequestRefresh asks the bound scheduler to recompute the entity's
// displayed state. A no-op before the entity is registered.
func (b *BaseEntity) RequestRefresh() {
	b.mu.Lock()
	s := b.scheduler
	b.mu.Unlock()

	if s != nil {
		s.ScheduleRefresh(b.uniqueID)
	}
}
