package api

import (
	"net/url"
	"strconv"
	"testing"
)

func parseQuery(t *testing.T, raw string) map[string]string {
	t.Helper()
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query %q: %v", raw, err)
	}
	out := make(map[string]string, len(values))
	for k := range values {
		out[k] = values.Get(k)
	}
	return out
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
