package version

import "testing"

func TestNormalize(t *testing.T) {
	got, err := Normalize("v2.25.0")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "2.25.0" {
		t.Fatalf("expected 2.25.0, got %s", got)
	}
}

func TestNormalizeInvalid(t *testing.T) {
	if _, err := Normalize("not-a-version"); err == nil {
		t.Fatal("expected error for invalid version")
	}
	if _, err := Normalize(""); err == nil {
		t.Fatal("expected error for empty version")
	}
}

func TestCompareSemanticOrdering(t *testing.T) {
	// String comparison would order 2.9.0 above 2.10.0.
	cmp, err := Compare("2.9.0", "2.10.0")
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if cmp != -1 {
		t.Fatalf("expected 2.9.0 < 2.10.0, got cmp=%d", cmp)
	}
}

func TestNewer(t *testing.T) {
	if Newer("2.9.0", "2.10.0") {
		t.Fatal("2.9.0 must not be newer than 2.10.0")
	}
	if !Newer("2.26.1", "2.26.0") {
		t.Fatal("2.26.1 should be newer than 2.26.0")
	}
	if Newer("garbage", "1.0.0") {
		t.Fatal("unparseable candidate must report false")
	}
}

func TestHighest(t *testing.T) {
	got := Highest([]string{"2.9.0", "2.10.0", "2.2.9"})
	if got != "2.10.0" {
		t.Fatalf("expected 2.10.0, got %s", got)
	}
	if Highest(nil) != "" {
		t.Fatal("expected empty result for empty input")
	}
	if Highest([]string{"junk"}) != "" {
		t.Fatal("expected empty result for unparseable input")
	}
}
