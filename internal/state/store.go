package state

import (
	"slices"
	"sync"
	"time"

	"github.com/rickgao/coinboard/internal/model"
)

// View is a point-in-time copy of the store for rendering.
type View struct {
	Selection model.Selection
	model.FetchResult

	Code      string
	Total     int
	Seq       uint64
	FetchedAt time.Time // zero until the first cycle completes
}

// Store is the thread-safe view state.
type Store struct {
	mu sync.RWMutex

	sel     model.Selection
	rows    []model.MarketRow
	errMsg  string
	loading bool
	code    string

	// Set when the selection changed after the latest cycle began; the
	// rows on display no longer match it.
	pending bool

	// Sequence number of the most recently started fetch.
	seq       uint64
	fetchedAt time.Time

	// Coalescing change notifications for the orchestrator.
	changes chan struct{}
}

// New creates a store initialised to the default selection with the code
// panel seeded from code.
func New(code string) *Store {
	return &Store{
		sel:     model.DefaultSelection(),
		rows:    []model.MarketRow{},
		code:    code,
		changes: make(chan struct{}, 1),
	}
}

// Changes delivers a signal after any fetch input changes. Signals are
// coalesced: several changes before the receiver wakes up yield one signal.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

// Selection returns the current filter selection.
func (s *Store) Selection() model.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel
}

// Snapshot returns a copy of the whole view state.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Selection: s.sel,
		FetchResult: model.FetchResult{
			Rows:    slices.Clone(s.rows),
			Error:   s.errMsg,
			Loading: s.loading,
		},
		Code:      s.code,
		Total:     s.sel.Total(),
		Seq:       s.seq,
		FetchedAt: s.fetchedAt,
	}
}

// SetCurrency replaces the currency.
func (s *Store) SetCurrency(c model.Currency) {
	s.update(func(sel *model.Selection) { sel.Currency = c })
}

// SetSort replaces the sort order.
func (s *Store) SetSort(o model.SortOrder) {
	s.update(func(sel *model.Selection) { sel.Sort = o })
}

// SetPagination replaces page and page size together, as the table's
// pagination control reports both at once.
func (s *Store) SetPagination(page, pageSize int) {
	s.update(func(sel *model.Selection) {
		sel.Page = page
		sel.PageSize = pageSize
	})
}

// SetSearch replaces the search term. The page number is left alone.
func (s *Store) SetSearch(term string) {
	s.update(func(sel *model.Selection) { sel.Search = term })
}

// SetCode replaces the code panel text. It never triggers a fetch.
func (s *Store) SetCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
}

// update applies fn to the selection. A change marks the view loading
// until a cycle started after it completes, and notifies.
func (s *Store) update(fn func(*model.Selection)) {
	s.mu.Lock()
	before := s.sel
	fn(&s.sel)
	changed := s.sel != before
	if changed {
		s.pending = true
		s.loading = true
	}
	s.mu.Unlock()

	if changed {
		s.notifyChange()
	}
}

// notifyChange posts to the changes channel without blocking.
func (s *Store) notifyChange() {
	select {
	case s.changes <- struct{}{}:
	default:
		// A signal is already pending.
	}
}

// BeginFetch marks a cycle as in flight and returns its sequence number.
func (s *Store) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.loading = true
	s.pending = false
	return s.seq
}

// FinishFetch records the outcome of cycle seq. Outcomes of superseded
// cycles are dropped and FinishFetch returns false. On failure the rows are
// kept or cleared according to policy. The view stays loading if the
// selection changed while the cycle was in flight.
func (s *Store) FinishFetch(seq uint64, rows []model.MarketRow, err error, policy model.ErrorPolicy) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	s.loading = s.pending
	s.fetchedAt = time.Now()

	if err != nil {
		s.errMsg = model.NewFetchFailure(err).Message
		if policy == model.ClearRows {
			s.rows = []model.MarketRow{}
		}
		return true
	}

	if rows == nil {
		rows = []model.MarketRow{}
	}
	s.rows = rows
	s.errMsg = ""
	return true
}
