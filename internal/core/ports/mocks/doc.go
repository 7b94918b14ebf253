// Package mocks provides test doubles for ports interfaces.
//
// These mocks are designed to be simple, thread-safe, in-memory implementations
// suitable for unit testing. Each mock provides:
//
//   - Default behavior backed by in-memory slices in insertion order
//   - Callback functions (xxxFn) for customizing behavior per test
//   - Helper methods for setting state directly
//
// # Usage Example
//
//	func TestEngine(t *testing.T) {
//		store := mocks.NewRecordStore()
//		store.AddWines(domain.Wine{ID: "w1", Name: "Margaux", Rating: 5})
//
//		engine, _ := recommend.NewEngine(nil, store, nil)
//		// ... test engine behavior
//	}
//
// # Available Mocks
//
//   - RecordStore: implements ports.RecordStore
package mocks
