package model

import "testing"

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		480:  "08:00",
		845:  "14:05",
		1439: "23:59",
		1530: "25:30", // past midnight stays unwrapped
	}
	for min, want := range cases {
		if got := FormatClock(min); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", min, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	for s, want := range map[string]int{"08:00": 480, "00:00": 0, "23:59": 1439, "9:30": 570} {
		got, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", s, got, want)
		}
	}
	for _, s := range []string{"24:00", "12:60", "-1:00", "noon", ""} {
		if _, err := ParseClock(s); err == nil {
			t.Fatalf("ParseClock(%q) should fail", s)
		}
	}
}
