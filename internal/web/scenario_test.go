package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/coinboard/internal/api"
	"github.com/rickgao/coinboard/internal/metrics"
	"github.com/rickgao/coinboard/internal/orchestrator"
	"github.com/rickgao/coinboard/internal/state"
)

// fakeCoinGecko records every query it receives.
type fakeCoinGecko struct {
	mu      sync.Mutex
	queries []url.Values
	status  int
}

func (f *fakeCoinGecko) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.Query())
	status := f.status
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	q := r.URL.Query()
	w.Header().Set("Content-Type", "application/json")
	switch {
	case q.Get("ids") == "bitcoin":
		w.Write([]byte(`[{"id":"bitcoin","name":"Bitcoin","current_price":64000,"price_change_24h":1.5,"price_change_percentage_24h":0.2}]`))
	case q.Has("ids"):
		w.Write([]byte(`[]`))
	default:
		w.Write([]byte(`[{"id":"bitcoin","name":"Bitcoin"},{"id":"ethereum","name":"Ethereum"}]`))
	}
}

func (f *fakeCoinGecko) calls() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.queries...)
}

func (f *fakeCoinGecko) fail(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func startDashboard(t *testing.T) (*Server, *state.Store, *fakeCoinGecko) {
	t.Helper()

	fake := &fakeCoinGecko{}
	upstream := httptest.NewServer(http.StripPrefix("/api/v3/coins", fake))
	t.Cleanup(upstream.Close)

	client := api.NewClient(upstream.URL + "/api/v3/coins/")
	store := state.New("")
	tracker := metrics.NewTracker()
	orch := orchestrator.New(orchestrator.DefaultConfig(), client, store, nil, tracker)
	require.NoError(t, orch.Start(context.Background()))
	t.Cleanup(func() { orch.Stop(context.Background()) })

	srv, err := NewServer(store, orch, tracker, "test", nil)
	require.NoError(t, err)
	return srv, store, fake
}

func waitIdle(t *testing.T, store *state.Store, calls func() int, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return calls() >= want && !store.Snapshot().Loading
	}, 2*time.Second, 5*time.Millisecond)
}

func TestScenarioInitialLoadThenSearch(t *testing.T) {
	srv, store, fake := startDashboard(t)
	numCalls := func() int { return len(fake.calls()) }

	// Initial mount.
	waitIdle(t, store, numCalls, 1)
	first := fake.calls()[0]
	assert.Equal(t, "USD", first.Get("vs_currency"))
	assert.Equal(t, "market_cap_desc", first.Get("order"))
	assert.Equal(t, "10", first.Get("per_page"))
	assert.Equal(t, "1", first.Get("page"))
	assert.Equal(t, "false", first.Get("sparkline"))

	body := get(t, srv, "/").Body.String()
	assert.Contains(t, body, ">ethereum<")

	// Submit a search.
	w := postForm(t, srv, "/search", url.Values{"q": {"Bitcoin"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	waitIdle(t, store, numCalls, 2)

	calls := fake.calls()
	require.Len(t, calls, 2)
	search := calls[1]
	assert.Equal(t, "USD", search.Get("vs_currency"))
	assert.Equal(t, "bitcoin", search.Get("ids"))
	assert.False(t, search.Has("order"))
	assert.False(t, search.Has("page"))

	v := store.Snapshot()
	assert.Equal(t, 0, v.Total)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "bitcoin", v.Rows[0].ID)

	body = get(t, srv, "/").Body.String()
	assert.NotContains(t, body, ">ethereum<")
	assert.NotContains(t, body, `action="/page"`)
}

func TestScenarioUnknownCoin(t *testing.T) {
	srv, store, fake := startDashboard(t)
	numCalls := func() int { return len(fake.calls()) }
	waitIdle(t, store, numCalls, 1)

	postForm(t, srv, "/search", url.Values{"q": {"no-such-coin"}})
	waitIdle(t, store, numCalls, 2)

	body := get(t, srv, "/").Body.String()
	assert.Contains(t, body, "No coins to display")
	assert.NotContains(t, body, "Something went wrong")
}

func TestScenarioUpstreamFailureKeepsRows(t *testing.T) {
	srv, store, fake := startDashboard(t)
	numCalls := func() int { return len(fake.calls()) }
	waitIdle(t, store, numCalls, 1)

	fake.fail(http.StatusTooManyRequests)
	postForm(t, srv, "/currency", url.Values{"currency": {"EUR"}})
	waitIdle(t, store, numCalls, 2)

	body := get(t, srv, "/").Body.String()
	assert.Contains(t, body, "Something went wrong, get markets: coingecko api error 429: Too Many Requests")
	assert.Contains(t, body, ">ethereum<")
	assert.Contains(t, body, `<option value="EUR" selected>`)
}

func TestScenarioControlChangeShowsLoading(t *testing.T) {
	srv, store, fake := startDashboard(t)
	numCalls := func() int { return len(fake.calls()) }
	waitIdle(t, store, numCalls, 1)

	w := postForm(t, srv, "/currency", url.Values{"currency": {"EUR"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	// The redirect target must not present the new selection over the
	// previous rows as if they were current.
	v := store.Snapshot()
	assert.Equal(t, "EUR", v.Selection.Currency.Code())
	assert.True(t, v.Loading)

	body := get(t, srv, "/").Body.String()
	assert.Contains(t, body, `http-equiv="refresh"`)
	assert.Contains(t, body, "Loading")

	waitIdle(t, store, numCalls, 2)
	assert.Equal(t, "EUR", fake.calls()[1].Get("vs_currency"))
	assert.NotContains(t, get(t, srv, "/").Body.String(), `http-equiv="refresh"`)
}
