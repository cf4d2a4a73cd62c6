package handler

import (
	"strings"
	"testing"
)

func TestValidator_NamesFieldsByJSONTag(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Email: "not-an-email", Password: "x"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"email must be a valid email", "first_name is required", "last_name is required"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_PlanetNumbersRequired(t *testing.T) {
	v := NewValidator()
	zero := 0.0

	req := addPlanetRequest{PlanetName: "Pluto"}
	req.PlanetType, req.HomeStar = "Dwarf", "Sun"
	req.Mass, req.Radius = &zero, &zero

	err := v.Validate(&req)
	if err == nil || !strings.Contains(err.Error(), "distance is required") {
		t.Fatalf("expected distance to be required, got %v", err)
	}

	req.Distance = &zero
	if err := v.Validate(&req); err != nil {
		t.Fatalf("zero values are valid, got %v", err)
	}
}
