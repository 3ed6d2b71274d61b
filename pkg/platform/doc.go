// Package platform provides the host-platform surface the bridge's entity
// adapters plug into.
//
// It deliberately models only what an adapter needs from a home-automation
// host: a topic-keyed Dispatcher for discovery broadcasts, a Registry that
// accepts constructed entities and recomputes their displayed state, and
// the Entity contract adapters implement. The real platform's lifecycle,
// UI, and persistence are out of scope.
//
// # Refresh Scheduling
//
// Entities never block on state recomputation. They call RequestRefresh,
// which marks the entity dirty and returns immediately; the Registry's
// worker goroutine recomputes the snapshot later, coalescing duplicate
// requests for the same entity into a single recompute.
package platform
