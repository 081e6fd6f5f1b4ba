package models

import "testing"

func TestValidWilaya(t *testing.T) {
	cases := map[int]bool{
		0:  false,
		1:  true,
		16: true,
		58: true,
		59: false,
		-4: false,
	}
	for code, want := range cases {
		if got := ValidWilaya(code); got != want {
			t.Fatalf("ValidWilaya(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestValidStore(t *testing.T) {
	for _, store := range StoreOrder {
		if !ValidStore(store) {
			t.Fatalf("store %q should be valid", store)
		}
	}
	if ValidStore("oran") {
		t.Fatal("unknown store accepted")
	}
	if ValidStore("") {
		t.Fatal("empty store accepted")
	}
}
