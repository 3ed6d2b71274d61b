package platform

import (
	"sync"

	"github.com/vesync-bridge/vesync-go/pkg/log"
)

// Registry holds registered entities and their latest displayed-state
// snapshots. It owns a single worker goroutine that recomputes snapshots
// for entities marked dirty via ScheduleRefresh, coalescing duplicate
// requests. Close stops the worker.
type Registry struct {
	logger log.Logger

	mu       sync.Mutex
	entities map[string]Entity
	order    []string
	states   map[string]State
	pending  map[string]struct{}
	closed   bool

	trigger chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup

	// flushMu serializes whole drains. When Flush returns, every
	// request pending at the time of the call has been recomputed and
	// stored - including drains in flight on the worker.
	flushMu sync.Mutex
}

// NewRegistry creates a registry and starts its refresh worker.
// A nil logger disables event logging.
func NewRegistry(logger log.Logger) *Registry {
	return newRegistry(logger, true)
}

// newRegistry optionally skips the worker so tests can drive Flush
// deterministically.
func newRegistry(logger log.Logger, startWorker bool) *Registry {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	r := &Registry{
		logger:   logger,
		entities: make(map[string]Entity),
		states:   make(map[string]State),
		pending:  make(map[string]struct{}),
		trigger:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	if startWorker {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

// Add registers entities, binding the registry as their refresh
// scheduler. When updateBeforeAdd is set, each entity's state is
// recomputed synchronously before it becomes visible.
func (r *Registry) Add(entities []Entity, updateBeforeAdd bool) {
	for _, e := range entities {
		if aware, ok := e.(SchedulerAware); ok {
			aware.BindScheduler(r)
		}

		if updateBeforeAdd {
			r.refresh(e)
		}

		r.mu.Lock()
		if _, exists := r.entities[e.UniqueID()]; !exists {
			r.order = append(r.order, e.UniqueID())
		}
		r.entities[e.UniqueID()] = e
		r.mu.Unlock()
	}
}

// ScheduleRefresh marks an entity dirty and returns immediately.
// Duplicate requests before the worker runs are coalesced. Requests for
// unknown entities are ignored.
func (r *Registry) ScheduleRefresh(uniqueID string) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if _, ok := r.entities[uniqueID]; !ok {
		r.mu.Unlock()
		return
	}
	r.pending[uniqueID] = struct{}{}
	r.mu.Unlock()

	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Flush synchronously processes all pending refresh requests.
// Intended for tests and for draining before shutdown.
func (r *Registry) Flush() {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()

	r.mu.Lock()
	dirty := make([]Entity, 0, len(r.pending))
	for id := range r.pending {
		if e, ok := r.entities[id]; ok {
			dirty = append(dirty, e)
		}
		delete(r.pending, id)
	}
	r.mu.Unlock()

	for _, e := range dirty {
		r.refresh(e)
	}
}

// EntityState returns the latest snapshot for an entity.
func (r *Registry) EntityState(uniqueID string) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[uniqueID]
	return s, ok
}

// Entity returns a registered entity by unique ID.
func (r *Registry) Entity(uniqueID string) (Entity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[uniqueID]
	return e, ok
}

// Entities returns all registered entities in registration order.
func (r *Registry) Entities() []Entity {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Entity, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.entities[id])
	}
	return result
}

// Close stops the refresh worker. Pending requests are dropped.
// Safe to call multiple times.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.done)
	r.wg.Wait()
}

func (r *Registry) worker() {
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			return
		case <-r.trigger:
			r.Flush()
		}
	}
}

// refresh recomputes and stores one entity's snapshot. Read errors are
// logged, not recovered; the previous snapshot stays in place.
func (r *Registry) refresh(e Entity) {
	state, err := e.State()
	if err != nil {
		r.logger.Log(log.NewErrorEvent(e.UniqueID(), "state refresh", err))
		return
	}

	r.mu.Lock()
	r.states[e.UniqueID()] = state
	r.mu.Unlock()

	refresh := log.StateRefreshEvent{State: state.State}
	if mode, ok := state.Attributes[AttrMode].(string); ok {
		refresh.Mode = mode
	}
	if humidity, ok := state.Attributes[AttrHumidity].(int); ok {
		refresh.TargetHumidity = humidity
	}
	r.logger.Log(log.NewStateRefreshEvent(e.UniqueID(), refresh))
}

// Compile-time interface satisfaction check.
var _ RefreshScheduler = (*Registry)(nil)
