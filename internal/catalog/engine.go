package catalog

import (
	"sync"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// View is a consistent snapshot of the derived order list.
type View struct {
	Query    model.OrderQuery
	Orders   []model.Order
	Total    int
	Filtered int
}

// Engine owns the authoritative order list and keeps its derived view current.
// Every mutation re-derives the view before the lock is released.
type Engine struct {
	mu       sync.RWMutex
	orders   []model.Order
	filtered []model.Order
	query    model.OrderQuery
}

// New constructs engine with initial orders in their given order.
func New(orders []model.Order) *Engine {
	e := &Engine{
		orders: make([]model.Order, 0, len(orders)),
		query:  model.DefaultOrderQuery(),
	}
	for _, o := range orders {
		e.orders = append(e.orders, o.Clone())
	}
	e.derive()
	return e
}

func (e *Engine) derive() {
	e.filtered = Derive(e.orders, e.query)
}

// SetSearchQuery replaces search text.
func (e *Engine) SetSearchQuery(q string) View {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.Search = q
	e.derive()
	return e.viewLocked()
}

// SetStatusFilter replaces status filter. StatusAll disables filtering.
func (e *Engine) SetStatusFilter(f model.StatusFilter) View {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.StatusFilter = f
	e.derive()
	return e.viewLocked()
}

// SetSortBy changes sort key.
func (e *Engine) SetSortBy(field model.SortField) View {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.SortBy = field
	e.derive()
	return e.viewLocked()
}

// ToggleSortOrder flips between ascending and descending.
func (e *Engine) ToggleSortOrder() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.SortOrder = e.query.SortOrder.Toggle()
	e.derive()
	return e.viewLocked()
}

// Add inserts order at the front of the list.
func (e *Engine) Add(order model.Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orders = append([]model.Order{order.Clone()}, e.orders...)
	e.derive()
}

// Update replaces the order with the same id. Unknown ids are ignored.
func (e *Engine) Update(order model.Order) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.indexLocked(order.ID)
	if idx < 0 {
		return false
	}
	e.orders[idx] = order.Clone()
	e.derive()
	return true
}

// Delete removes the order with given id. Unknown ids are ignored.
func (e *Engine) Delete(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.indexLocked(id)
	if idx < 0 {
		return false
	}
	e.orders = append(e.orders[:idx:idx], e.orders[idx+1:]...)
	e.derive()
	return true
}

// Get returns a copy of the order with given id.
func (e *Engine) Get(id string) (model.Order, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	idx := e.indexLocked(id)
	if idx < 0 {
		return model.Order{}, false
	}
	return e.orders[idx].Clone(), true
}

// View returns the current derived list with query state.
func (e *Engine) View() View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.viewLocked()
}

// Query returns current search, filter and sort settings.
func (e *Engine) Query() model.OrderQuery {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.query
}

// Orders returns a copy of the authoritative list.
func (e *Engine) Orders() []model.Order {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return cloneOrders(e.orders)
}

// Len returns the number of orders held.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.orders)
}

func (e *Engine) viewLocked() View {
	return View{
		Query:    e.query,
		Orders:   cloneOrders(e.filtered),
		Total:    len(e.orders),
		Filtered: len(e.filtered),
	}
}

func (e *Engine) indexLocked(id string) int {
	for i := range e.orders {
		if e.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneOrders(src []model.Order) []model.Order {
	out := make([]model.Order, len(src))
	for i, o := range src {
		out[i] = o.Clone()
	}
	return out
}
