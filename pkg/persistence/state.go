package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/graphwatch/graphwatch-go/pkg/catalog"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// CollectionState contains the saved orders of a collection.
type CollectionState struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// SessionID is the session of the collection that was saved.
	SessionID string `json:"session_id,omitempty"`

	// Orders in member order.
	Orders []OrderState `json:"orders,omitempty"`
}

// OrderState contains one saved order.
type OrderState struct {
	Label string     `json:"label"`
	Item  *ItemState `json:"item,omitempty"`

	// SharesItemWith is the index of an earlier order holding the same item.
	SharesItemWith *int `json:"shares_item_with,omitempty"`
}

// ItemState contains one saved line item.
type ItemState struct {
	Name     string `json:"name"`
	Cost     int64  `json:"cost"`
	Currency int64  `json:"currency,omitempty"`
}

// Snapshot captures the orders of a collection.
func Snapshot(sessionID string, orders []*catalog.Order) *CollectionState {
	state := &CollectionState{
		SessionID: sessionID,
		Orders:    make([]OrderState, len(orders)),
	}

	seen := make(map[*catalog.LineItem]int)
	for i, o := range orders {
		st := OrderState{Label: o.Label()}
		if item := o.Item(); item != nil {
			if first, ok := seen[item]; ok {
				st.SharesItemWith = &first
			} else {
				seen[item] = i
				st.Item = &ItemState{
					Name:     item.Name(),
					Cost:     item.Cost(),
					Currency: item.Currency(),
				}
			}
		}
		state.Orders[i] = st
	}
	return state
}

// Restore creates the saved orders.
func (s *CollectionState) Restore() ([]*catalog.Order, error) {
	orders := make([]*catalog.Order, len(s.Orders))
	for i, st := range s.Orders {
		o := catalog.NewOrder(st.Label, nil)
		switch {
		case st.SharesItemWith != nil:
			j := *st.SharesItemWith
			if j < 0 || j >= i {
				return nil, fmt.Errorf("order %d: shares item with %d, which is not an earlier order", i, j)
			}
			o.SetItem(orders[j].Item())
		case st.Item != nil:
			item := catalog.NewLineItem(st.Item.Name, st.Item.Cost)
			item.SetCurrency(st.Item.Currency)
			o.SetItem(item)
		}
		orders[i] = o
	}
	return orders, nil
}

// StateStore manages persistence of collection state to a JSON file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a new state store.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Path returns the state file path.
func (s *StateStore) Path() string {
	return s.path
}

// Save persists the state to disk.
func (s *StateStore) Save(state *CollectionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the state from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *StateStore) Load() (*CollectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &CollectionState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	if state.Version > StateVersion {
		return nil, fmt.Errorf("unsupported state version %d", state.Version)
	}

	return state, nil
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
