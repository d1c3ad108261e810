package cart

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	cat := testCatalog()

	c := UpdateQuantity(New(), "A", 2, cat)
	s := Summarize(c, cat, 0.0067, 1)

	if s.TotalOriginal != 200 {
		t.Errorf("totalOriginal = %v, want 200", s.TotalOriginal)
	}
	if math.Abs(s.TotalConverted-1.34) > 1e-9 {
		t.Errorf("totalConverted = %v, want 1.34", s.TotalConverted)
	}
	if s.ItemCount != 2 {
		t.Errorf("itemCount = %d, want 2", s.ItemCount)
	}
	if s.PerPersonOriginal != 0 {
		t.Errorf("no split requested, perPerson = %v", s.PerPersonOriginal)
	}
}

func TestSummarizeSkipsMissingItems(t *testing.T) {
	cat := testCatalog()
	c := UpdateQuantity(New(), "A", 1, cat)
	c = UpdateQuantity(c, "B", 2, cat)

	// simulate a catalog swap that dropped item B
	cat.Items = cat.Items[:1]

	s := Summarize(c, cat, 1, 1)
	if s.TotalOriginal != 100 {
		t.Errorf("totalOriginal = %v, want 100 (B skipped)", s.TotalOriginal)
	}

	s = Summarize(c, nil, 1, 1)
	if s.TotalOriginal != 0 || s.ItemCount != 0 {
		t.Errorf("nil catalog should produce empty summary, got %+v", s)
	}
}

func TestSummarizeSplitCeiling(t *testing.T) {
	cat := testCatalog()
	c := UpdateQuantity(New(), "A", 1, cat) // total 100

	s := Summarize(c, cat, 1, 3)
	if s.PerPersonOriginal != 34 {
		t.Errorf("perPerson = %v, want ceil(100/3) = 34", s.PerPersonOriginal)
	}

	// shares always cover the bill
	for split := 1; split <= 7; split++ {
		s := Summarize(c, cat, 1, split)
		if split > 1 && s.PerPersonOriginal*float64(split) < s.TotalOriginal {
			t.Errorf("split %d undercollects: %v * %d < %v",
				split, s.PerPersonOriginal, split, s.TotalOriginal)
		}
	}
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(New(), testCatalog(), 0.0067, 2)
	if s.TotalOriginal != 0 || s.ItemCount != 0 || s.PerPersonOriginal != 0 {
		t.Errorf("empty cart summary = %+v, want zeros", s)
	}
}
