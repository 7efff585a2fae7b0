package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{"USD", CurrencyUSD, false},
		{"usd", CurrencyUSD, false},
		{"EUR", CurrencyEUR, false},
		{"GBP", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCurrency(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCurrency(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCurrency(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if CurrencyEUR.Label() != "EUR" {
		t.Errorf("Label() = %q, want %q", CurrencyEUR.Label(), "EUR")
	}
	if Currency(7).Valid() {
		t.Error("Currency(7) should be invalid")
	}
	if Currency(7).Code() != "" {
		t.Errorf("Code() of invalid currency = %q, want empty", Currency(7).Code())
	}
}

func TestSortOrder(t *testing.T) {
	if SortMarketCapDesc.Value() != "market_cap_desc" {
		t.Errorf("Value() = %q", SortMarketCapDesc.Value())
	}
	if SortMarketCapAsc.Label() != "Market cap ascending" {
		t.Errorf("Label() = %q", SortMarketCapAsc.Label())
	}

	for _, s := range SortOrders() {
		got, err := ParseSortOrder(s.Value())
		if err != nil {
			t.Fatalf("ParseSortOrder(%q): %v", s.Value(), err)
		}
		if got != s {
			t.Errorf("ParseSortOrder(%q) = %v, want %v", s.Value(), got, s)
		}
	}

	if _, err := ParseSortOrder("volume_desc"); err == nil {
		t.Error("ParseSortOrder(volume_desc) expected error")
	}
}

func TestValidPageSize(t *testing.T) {
	for _, n := range []int{5, 10, 20, 50, 100} {
		if !ValidPageSize(n) {
			t.Errorf("ValidPageSize(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -10, 15, 250} {
		if ValidPageSize(n) {
			t.Errorf("ValidPageSize(%d) = true, want false", n)
		}
	}
}

func TestSelection(t *testing.T) {
	sel := DefaultSelection()

	if sel.Currency != CurrencyUSD || sel.Sort != SortMarketCapDesc || sel.Page != 1 || sel.PageSize != 10 || sel.Search != "" {
		t.Fatalf("DefaultSelection() = %+v", sel)
	}

	t.Run("total while browsing", func(t *testing.T) {
		for _, size := range PageSizes {
			s := sel
			s.PageSize = size
			s.Page = 7
			if s.Total() != 1000 {
				t.Errorf("Total() = %d, want 1000", s.Total())
			}
		}
	})

	t.Run("total while searching", func(t *testing.T) {
		s := sel
		s.Search = "bitcoin"
		if !s.Searching() {
			t.Error("Searching() = false, want true")
		}
		if s.Total() != 0 {
			t.Errorf("Total() = %d, want 0", s.Total())
		}
	})
}

func TestNormalizeSearch(t *testing.T) {
	tests := map[string]string{
		"Bitcoin":     "bitcoin",
		"  ETHEREUM ": "ethereum",
		"":            "",
		"   ":         "",
	}
	for in, want := range tests {
		if got := NormalizeSearch(in); got != want {
			t.Errorf("NormalizeSearch(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFetchFailure(t *testing.T) {
	base := errors.New("timeout")
	wrapped := fmt.Errorf("get markets: %w", base)

	ff := NewFetchFailure(wrapped)
	if ff.Error() != "get markets: timeout" {
		t.Errorf("Error() = %q", ff.Error())
	}
	if !errors.Is(ff, base) {
		t.Error("FetchFailure should unwrap to the original error")
	}
	if NewFetchFailure(ff) != ff {
		t.Error("NewFetchFailure should not re-wrap a FetchFailure")
	}
}

func TestParseErrorPolicy(t *testing.T) {
	if p, ok := ParseErrorPolicy("keep_rows"); !ok || p != KeepRows {
		t.Errorf("keep_rows = %v, %v", p, ok)
	}
	if p, ok := ParseErrorPolicy("clear_rows"); !ok || p != ClearRows {
		t.Errorf("clear_rows = %v, %v", p, ok)
	}
	if _, ok := ParseErrorPolicy("drop"); ok {
		t.Error("drop should be rejected")
	}
	if ClearRows.String() != "clear_rows" {
		t.Errorf("String() = %q", ClearRows.String())
	}
}
