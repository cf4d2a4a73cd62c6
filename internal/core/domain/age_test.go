package domain

import "testing"

func TestOldEnough(t *testing.T) {
	cases := []struct {
		age  int
		want bool
	}{
		{0, false},
		{17, false},
		{18, true},
		{19, true},
		{120, true},
	}
	for _, tc := range cases {
		if got := OldEnough(tc.age); got != tc.want {
			t.Errorf("OldEnough(%d) = %v, want %v", tc.age, got, tc.want)
		}
	}
}

func TestPlanetApply_KeepsIdentity(t *testing.T) {
	p := Planet{ID: 7, PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sun", Mass: 1, Radius: 2, Distance: 3}
	p.Apply(PlanetAttributes{PlanetType: "Class X", HomeStar: "Sol", Mass: 10, Radius: 20, Distance: 30})

	if p.ID != 7 || p.PlanetName != "Earth" {
		t.Fatalf("identity changed: %+v", p)
	}
	if p.PlanetType != "Class X" || p.HomeStar != "Sol" || p.Mass != 10 || p.Radius != 20 || p.Distance != 30 {
		t.Fatalf("attributes not applied: %+v", p)
	}
}
