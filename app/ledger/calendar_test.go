package ledger

import "testing"

func TestParseAcademicYear(t *testing.T) {
	cases := []struct {
		label   string
		wantErr bool
		start   int
	}{
		{"2025-2026", false, 2025},
		{"1999-2000", false, 1999},
		{"2025-2027", true, 0},
		{"2025", true, 0},
		{"abcd-efgh", true, 0},
		{"", true, 0},
	}
	for _, tc := range cases {
		cal, err := ParseAcademicYear(tc.label)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.label)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.label, err)
			continue
		}
		if cal.StartYear != tc.start {
			t.Errorf("%q: start year %d, want %d", tc.label, cal.StartYear, tc.start)
		}
		if cal.Label() != tc.label {
			t.Errorf("%q: label round-trip gave %q", tc.label, cal.Label())
		}
	}
}

func TestMonthDueDate(t *testing.T) {
	cal := Calendar{StartYear: 2025}
	cases := map[string]string{
		"Jun": "2025-06-10",
		"Jul": "2025-07-10",
		"Nov": "2025-11-10",
		"Dec": "2025-12-10",
		"Jan": "2026-01-10",
		"Feb": "2026-02-10",
		"Mar": "2026-03-10",
	}
	for month, want := range cases {
		if got := cal.MonthDueDate(month); got != want {
			t.Errorf("%s: %s, want %s", month, got, want)
		}
	}
	if got := cal.MonthDueDate("Apr"); got != "" {
		t.Errorf("Apr is outside the cycle, got %q", got)
	}
}
