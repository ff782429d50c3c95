package subunit

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"unsafe"
)

func TestSubunits_ZeroValue(t *testing.T) {
	got := Subunits[Currency]{}
	want := NewSubunits(0, XXX)
	if got != want {
		t.Errorf("Subunits{} = %v, want %v", got, want)
	}
}

func TestMajorUnits_ZeroValue(t *testing.T) {
	got := MajorUnits[Currency]{}
	want := NewMajorUnits(0, XXX)
	if got != want {
		t.Errorf("MajorUnits{} = %v, want %v", got, want)
	}
}

func TestSubunits_Size(t *testing.T) {
	s := Subunits[Currency]{}
	got := unsafe.Sizeof(s)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%v) = %v, want %v", s, got, want)
	}
}

func TestSubunits_Accessors(t *testing.T) {
	s := NewSubunits(-42, dinar)
	if got := s.Amount(); got != -42 {
		t.Errorf("%v.Amount() = %v, want -42", s, got)
	}
	if got := s.Curr(); got != dinar {
		t.Errorf("%v.Curr() = %v, want %v", s, got, dinar)
	}
	m := NewMajorUnits(0.5, yen)
	if got := m.Amount(); got != 0.5 {
		t.Errorf("%v.Amount() = %v, want 0.5", m, got)
	}
	if got := m.Curr(); got != yen {
		t.Errorf("%v.Curr() = %v, want %v", m, got, yen)
	}
}

func TestSubunits_Convert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount int64
			curr   Currency
			want   float64
		}{
			{0, EUR, 0},
			{1, USD, 0.01},
			{-1, USD, -0.01},
			{1, INR, 0.01},
			{12345, USD, 123.45},
			{1999, USD, 19.99},
			{100, JPY, 100},
			{-7, JPY, -7},
			{1000, KWD, 1},
			{1234, KWD, 1.234},
			{-12345, OMR, -12.345},
			{math.MinInt64, JPY, -9223372036854775808},
		}
		for _, tt := range tests {
			s := NewSubunits(tt.amount, tt.curr)
			got, err := s.Convert()
			if err != nil {
				t.Errorf("%v.Convert() failed: %v", s, err)
				continue
			}
			want := NewMajorUnits(tt.want, tt.curr)
			if got != want {
				t.Errorf("%v.Convert() = %v, want %v", s, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []Currency{XXX, Currency(200)}
		for _, tt := range tests {
			s := NewSubunits(1, tt)
			_, err := s.Convert()
			if !errors.Is(err, ErrCurrencyNotFound) {
				t.Errorf("%v.Convert() failed with %v, want %v", s, err, ErrCurrencyNotFound)
			}
		}
	})

	t.Run("caller type error", func(t *testing.T) {
		s := NewSubunits(1, bitcoin)
		_, err := s.Convert()
		var cerr *ConversionError[wallet]
		if !errors.As(err, &cerr) {
			t.Fatalf("%v.Convert() returned %T, want %T", s, err, cerr)
		}
		if cerr.Curr != bitcoin {
			t.Errorf("%v.Convert() reported currency %v, want %v", s, cerr.Curr, bitcoin)
		}
	})
}

func TestMajorUnits_Convert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount float64
			curr   Currency
			want   int64
		}{
			{0, EUR, 0},
			{0.01, USD, 1},
			{-0.01, USD, -1},
			{123.45, USD, 12345},
			{100, JPY, 100},
			{1, KWD, 1000},
			{1.234, KWD, 1234},
			// scaled amounts that are not exact integers
			{0.29, USD, 29},
			{19.99, USD, 1999},
			{0.1 + 0.2, USD, 30},
			{1.005, USD, 100},
			// halves are rounded away from zero
			{-0.015, USD, -2},
			{0.0005, KWD, 1},
			{1.2345, KWD, 1235},
			{0.5, JPY, 1},
			{-0.5, JPY, -1},
			{2.5, JPY, 3},
			// boundaries
			{9223372036854774784, JPY, 9223372036854774784},
			{-9223372036854775808, JPY, math.MinInt64},
		}
		for _, tt := range tests {
			m := NewMajorUnits(tt.amount, tt.curr)
			got, err := m.Convert()
			if err != nil {
				t.Errorf("%v.Convert() failed: %v", m, err)
				continue
			}
			want := NewSubunits(tt.want, tt.curr)
			if got != want {
				t.Errorf("%v.Convert() = %v, want %v", m, got, want)
			}
		}
	})

	t.Run("range", func(t *testing.T) {
		tests := map[string]struct {
			amount float64
			curr   Currency
		}{
			"max int64 1":   {9223372036854775808, JPY},
			"max int64 2":   {92233720368547758.07, USD},
			"max int64 3":   {9223372036854775.807, KWD},
			"min int64":     {math.Nextafter(-9223372036854775808, math.Inf(-1)), JPY},
			"overflow 1":    {1e19, USD},
			"overflow 2":    {-1e19, USD},
			"overflow 3":    {math.MaxFloat64, USD},
			"overflow 4":    {-math.MaxFloat64, KWD},
			"special NaN":   {math.NaN(), USD},
			"special +Inf":  {math.Inf(1), USD},
			"special -Inf":  {math.Inf(-1), JPY},
			"overflow 5":    {math.MaxFloat64 / 10, KWD},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				m := NewMajorUnits(tt.amount, tt.curr)
				_, err := m.Convert()
				if !errors.Is(err, ErrRangeExceeded) {
					t.Errorf("%v.Convert() failed with %v, want %v", m, err, ErrRangeExceeded)
				}
				var cerr *ConversionError[Currency]
				if !errors.As(err, &cerr) || cerr.Curr != tt.curr {
					t.Errorf("%v.Convert() failed with %v, want %T for %v", m, err, cerr, tt.curr)
				}
			})
		}
	})

	t.Run("currency", func(t *testing.T) {
		m := NewMajorUnits(1, XXX)
		_, err := m.Convert()
		if !errors.Is(err, ErrCurrencyNotFound) {
			t.Errorf("%v.Convert() failed with %v, want %v", m, err, ErrCurrencyNotFound)
		}
	})

	t.Run("currency before range", func(t *testing.T) {
		m := NewMajorUnits(math.NaN(), bitcoin)
		_, err := m.Convert()
		if !errors.Is(err, ErrCurrencyNotFound) {
			t.Errorf("%v.Convert() failed with %v, want %v", m, err, ErrCurrencyNotFound)
		}
	})
}

func TestSubunits_RoundTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		amounts := []int64{
			0, 1, -1, 5, 29, -29, 99, 100, 101, 999, 1000, 1001,
			123456789, -987654321, 1 << 40, -(1 << 40), 1<<50 - 1, -(1 << 50),
			1 << 62, math.MinInt64,
		}
		for i := range codeLookup {
			c := Currency(i)
			if c == XXX {
				continue
			}
			for _, n := range amounts {
				s := NewSubunits(n, c)
				got, err := s.RoundTrip()
				if err != nil {
					t.Errorf("%v.RoundTrip() failed: %v", s, err)
					continue
				}
				if got != s {
					t.Errorf("%v.RoundTrip() = %v, want %v", s, got, s)
				}
			}
		}
	})

	t.Run("range", func(t *testing.T) {
		curr := []wallet{rupee, dollar, dinar, yen}
		for _, c := range curr {
			for n := int64(-100000); n <= 100000; n += 7 {
				s := NewSubunits(n, c)
				got, err := s.RoundTrip()
				if err != nil {
					t.Errorf("%v.RoundTrip() failed: %v", s, err)
					continue
				}
				if got != s {
					t.Errorf("%v.RoundTrip() = %v, want %v", s, got, s)
				}
			}
		}
	})

	// Close to the int64 boundaries float64 has fewer significant digits
	// than the subunit amount, so round trips lose data.
	t.Run("lossy", func(t *testing.T) {
		tests := []struct {
			amount int64
			curr   Currency
			want   int64
		}{
			{1<<53 + 1, USD, 1 << 53},
			{1<<62 + 1, USD, 1 << 62},
			{math.MaxInt64 - 1023, JPY, math.MaxInt64 - 1023},
			{math.MaxInt64 - 2000, USD, math.MaxInt64 - 1023},
		}
		for _, tt := range tests {
			s := NewSubunits(tt.amount, tt.curr)
			got, err := s.RoundTrip()
			if err != nil {
				t.Errorf("%v.RoundTrip() failed: %v", s, err)
				continue
			}
			want := NewSubunits(tt.want, tt.curr)
			if got != want {
				t.Errorf("%v.RoundTrip() = %v, want %v", s, got, want)
			}
		}
	})

	t.Run("range exceeded", func(t *testing.T) {
		tests := []struct {
			amount int64
			curr   Currency
		}{
			{math.MaxInt64, JPY},
			{math.MaxInt64, USD},
			{math.MaxInt64, KWD},
			{math.MaxInt64 - 1, INR},
			{math.MaxInt64 - 511, JPY},
		}
		for _, tt := range tests {
			s := NewSubunits(tt.amount, tt.curr)
			_, err := s.RoundTrip()
			if !errors.Is(err, ErrRangeExceeded) {
				t.Errorf("%v.RoundTrip() failed with %v, want %v", s, err, ErrRangeExceeded)
			}
		}
	})

	t.Run("currency", func(t *testing.T) {
		s := NewSubunits(1, bitcoin)
		_, err := s.RoundTrip()
		if !errors.Is(err, ErrCurrencyNotFound) {
			t.Errorf("%v.RoundTrip() failed with %v, want %v", s, err, ErrCurrencyNotFound)
		}
	})
}

func TestMajorUnits_RoundTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount float64
			curr   Currency
			want   float64
		}{
			{0.01, USD, 0.01},
			{0.011, USD, 0.01},
			{1.23456, KWD, 1.235},
			{100.4, JPY, 100},
			{-12.345, OMR, -12.345},
		}
		for _, tt := range tests {
			m := NewMajorUnits(tt.amount, tt.curr)
			got, err := m.RoundTrip()
			if err != nil {
				t.Errorf("%v.RoundTrip() failed: %v", m, err)
				continue
			}
			want := NewMajorUnits(tt.want, tt.curr)
			if got != want {
				t.Errorf("%v.RoundTrip() = %v, want %v", m, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			amount float64
			curr   Currency
			want   error
		}{
			{1e30, USD, ErrRangeExceeded},
			{math.NaN(), JPY, ErrRangeExceeded},
			{1, XXX, ErrCurrencyNotFound},
		}
		for _, tt := range tests {
			m := NewMajorUnits(tt.amount, tt.curr)
			_, err := m.RoundTrip()
			if !errors.Is(err, tt.want) {
				t.Errorf("%v.RoundTrip() failed with %v, want %v", m, err, tt.want)
			}
		}
	})
}

func TestSubunits_Decimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount int64
			curr   Currency
			want   string
		}{
			{1, USD, "0.01"},
			{-1, USD, "-0.01"},
			{12345, USD, "123.45"},
			{100, JPY, "100"},
			{1000, KWD, "1.000"},
			{math.MaxInt64, USD, "92233720368547758.07"},
			{math.MinInt64, KWD, "-9223372036854775.808"},
		}
		for _, tt := range tests {
			s := NewSubunits(tt.amount, tt.curr)
			got, err := s.Decimal()
			if err != nil {
				t.Errorf("%v.Decimal() failed: %v", s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Decimal() = %v, want %v", s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		s := NewSubunits(1, XXX)
		_, err := s.Decimal()
		if !errors.Is(err, ErrCurrencyNotFound) {
			t.Errorf("%v.Decimal() failed with %v, want %v", s, err, ErrCurrencyNotFound)
		}
	})
}

func TestSubunits_String(t *testing.T) {
	tests := []struct {
		s    Subunits[wallet]
		want string
	}{
		{NewSubunits(1, dollar), "USD 0.01"},
		{NewSubunits(-250, rupee), "INR -2.50"},
		{NewSubunits(100, yen), "JPY 100"},
		{NewSubunits(1000, dinar), "KWD 1.000"},
		{NewSubunits(7, bitcoin), "XXX 7"},
	}
	for _, tt := range tests {
		got := tt.s.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMajorUnits_String(t *testing.T) {
	tests := []struct {
		m    MajorUnits[Currency]
		want string
	}{
		{NewMajorUnits(0.01, USD), "USD 0.01"},
		{NewMajorUnits(100, JPY), "JPY 100"},
		{NewMajorUnits(-1.5, KWD), "KWD -1.5"},
		{NewMajorUnits(math.NaN(), USD), "USD NaN"},
	}
	for _, tt := range tests {
		got := tt.m.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSubunits_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    Subunits[Currency]
			json string
		}{
			{NewSubunits(1, USD), `{"amount":1,"currency":"USD"}`},
			{NewSubunits(-1000, KWD), `{"amount":-1000,"currency":"KWD"}`},
			{NewSubunits(math.MaxInt64, JPY), `{"amount":9223372036854775807,"currency":"JPY"}`},
		}
		for _, tt := range tests {
			data, err := json.Marshal(tt.s)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt.s, err)
				continue
			}
			if string(data) != tt.json {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.s, data, tt.json)
			}
			var got Subunits[Currency]
			err = json.Unmarshal(data, &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
				continue
			}
			if got != tt.s {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", data, got, tt.s)
			}
		}
	})

	t.Run("request", func(t *testing.T) {
		type request struct {
			Amount Subunits[wallet] `json:"amount"`
			ID     int8             `json:"id"`
		}
		data := []byte(`{"amount": {"amount": 1, "currency": 0}, "id": 1}`)
		var got request
		err := json.Unmarshal(data, &got)
		if err != nil {
			t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
		}
		want := request{Amount: NewSubunits(1, rupee), ID: 1}
		if got != want {
			t.Errorf("json.Unmarshal(%s) = %+v, want %+v", data, got, want)
		}
	})

	t.Run("null", func(t *testing.T) {
		got := NewSubunits(5, USD)
		err := json.Unmarshal([]byte("null"), &got)
		if err != nil {
			t.Errorf("json.Unmarshal(null) failed: %v", err)
		}
		if want := NewSubunits(5, USD); got != want {
			t.Errorf("json.Unmarshal(null) = %v, want %v", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`{"amount":1.5,"currency":"USD"}`,
			`{"amount":1,"currency":"UUU"}`,
			`{"amount":"1","currency":"USD"}`,
			`[1,"USD"]`,
		}
		for _, tt := range tests {
			var got Subunits[Currency]
			err := json.Unmarshal([]byte(tt), &got)
			if err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
	})
}

func TestMajorUnits_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    MajorUnits[Currency]
			json string
		}{
			{NewMajorUnits(0.01, USD), `{"amount":0.01,"currency":"USD"}`},
			{NewMajorUnits(-1.5, KWD), `{"amount":-1.5,"currency":"KWD"}`},
			{NewMajorUnits(100, JPY), `{"amount":100,"currency":"JPY"}`},
		}
		for _, tt := range tests {
			data, err := json.Marshal(tt.m)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt.m, err)
				continue
			}
			if string(data) != tt.json {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.m, data, tt.json)
			}
			var got MajorUnits[Currency]
			err = json.Unmarshal(data, &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
				continue
			}
			if got != tt.m {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", data, got, tt.m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := json.Marshal(NewMajorUnits(math.Inf(1), USD))
		if err == nil {
			t.Errorf("json.Marshal(+Inf) did not fail")
		}
		var got MajorUnits[Currency]
		err = json.Unmarshal([]byte(`{"amount":true,"currency":"USD"}`), &got)
		if err == nil {
			t.Errorf("json.Unmarshal did not fail")
		}
	})
}
