package signals

import (
	"sort"
	"testing"
)

func TestFindDates(t *testing.T) {
	text := "The lander launched on 14 Jul 2023 and touched down on 23 Aug 2023."

	got := FindDates(text)
	want := []string{"2023-07-14", "2023-08-23"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFindDatesDeduplicatesAndSorts(t *testing.T) {
	text := "Reviewed 23 Aug 2023, revisited 14 Jul 2023, confirmed 23 Aug 2023."

	got := FindDates(text)
	if len(got) != 2 {
		t.Fatalf("expected duplicates removed, got %v", got)
	}
	if !sort.StringsAreSorted(got) {
		t.Fatalf("expected ascending order, got %v", got)
	}
}

func TestFindDatesIgnoresUnparseableMatches(t *testing.T) {
	// Date-shaped noise must be skipped, not surfaced as an error.
	got := FindDates("The new Decree 9999 arrives someday.")
	for _, d := range got {
		if _, ok := NormalizeDate(d); !ok {
			t.Fatalf("output %q does not re-parse", d)
		}
	}
}

func TestFindDatesEmptyInput(t *testing.T) {
	if got := FindDates(""); len(got) != 0 {
		t.Fatalf("expected no dates for empty input, got %v", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	iso, ok := NormalizeDate("2023-08-23T10:00:00Z")
	if !ok || iso != "2023-08-23" {
		t.Fatalf("expected 2023-08-23, got %q ok=%v", iso, ok)
	}

	if _, ok := NormalizeDate("not a date"); ok {
		t.Fatal("expected failure for non-date text")
	}
	if _, ok := NormalizeDate(""); ok {
		t.Fatal("expected failure for empty text")
	}
}

func TestNormalizeDateRoundTrip(t *testing.T) {
	inputs := []string{"23 Aug 2023", "14 Jul 2023", "2023-01-02"}

	for _, in := range inputs {
		iso, ok := NormalizeDate(in)
		if !ok {
			t.Fatalf("expected %q to parse", in)
		}
		again, ok := NormalizeDate(iso)
		if !ok {
			t.Fatalf("ISO output %q did not re-parse", iso)
		}
		if again != iso {
			t.Fatalf("round trip changed date: %q -> %q", iso, again)
		}
	}
}
