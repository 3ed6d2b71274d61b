package platform

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesync-bridge/vesync-go/pkg/log"
)

// stubEntity is a minimal Entity with a controllable state and read counter.
type stubEntity struct {
	BaseEntity
	reads atomic.Int32
	state State
	err   error
}

func newStubEntity(name string) *stubEntity {
	return &stubEntity{
		BaseEntity: NewBaseEntity(name, name, DeviceClassHumidifier),
		state: State{
			State:      StateOn,
			Attributes: map[string]any{AttrMode: "auto", AttrHumidity: 45},
		},
	}
}

func (s *stubEntity) State() (State, error) {
	s.reads.Add(1)
	if s.err != nil {
		return State{}, s.err
	}
	return s.state, nil
}

// recordingLogger captures events for assertions.
type recordingLogger struct {
	events []log.Event
}

func (r *recordingLogger) Log(event log.Event) {
	r.events = append(r.events, event)
}

func TestRegistryAddUpdatesBeforeAdd(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	e := newStubEntity("bedroom")
	r.Add([]Entity{e}, true)

	state, ok := r.EntityState("bedroom")
	require.True(t, ok, "state should be available immediately after Add")
	assert.Equal(t, StateOn, state.State)
	assert.Equal(t, "auto", state.Attributes[AttrMode])
	assert.Equal(t, int32(1), e.reads.Load())
}

func TestRegistryAddWithoutInitialUpdate(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	e := newStubEntity("bedroom")
	r.Add([]Entity{e}, false)

	_, ok := r.EntityState("bedroom")
	assert.False(t, ok, "no state should exist before the first refresh")
	assert.Equal(t, int32(0), e.reads.Load())
}

func TestRegistryCoalescesRefreshes(t *testing.T) {
	// No worker: Flush is the only consumer, so coalescing is
	// observable deterministically.
	r := newRegistry(nil, false)

	e := newStubEntity("bedroom")
	r.Add([]Entity{e}, false)

	r.ScheduleRefresh("bedroom")
	r.ScheduleRefresh("bedroom")
	r.ScheduleRefresh("bedroom")
	r.Flush()

	assert.Equal(t, int32(1), e.reads.Load(), "duplicate requests should coalesce into one recompute")
}

func TestRegistryEntityRefreshViaScheduler(t *testing.T) {
	r := newRegistry(nil, false)

	e := newStubEntity("bedroom")
	r.Add([]Entity{e}, false)

	// The registry bound itself as the entity's scheduler during Add.
	e.RequestRefresh()
	r.Flush()

	state, ok := r.EntityState("bedroom")
	require.True(t, ok)
	assert.Equal(t, StateOn, state.State)
}

func TestRegistryRefreshErrorLogged(t *testing.T) {
	logger := &recordingLogger{}
	r := NewRegistry(logger)
	defer r.Close()

	e := newStubEntity("bedroom")
	e.err = errors.New(`"turbo" is not a supported humidifier mode`)
	r.Add([]Entity{e}, true)

	_, ok := r.EntityState("bedroom")
	assert.False(t, ok, "failed refresh must not store a snapshot")

	require.Len(t, logger.events, 1)
	assert.Equal(t, log.CategoryError, logger.events[0].Category)
	assert.Contains(t, logger.events[0].Error.Message, "turbo")
}

func TestRegistryUnknownEntityIgnored(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	r.ScheduleRefresh("nobody")
	r.Flush()
}

func TestRegistryEntitiesOrder(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	r.Add([]Entity{newStubEntity("a"), newStubEntity("b")}, false)
	r.Add([]Entity{newStubEntity("c")}, false)

	var names []string
	for _, e := range r.Entities() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}
