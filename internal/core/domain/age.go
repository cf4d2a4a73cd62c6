package domain

// MinimumAge is the inclusive age threshold of the greeting routes.
const MinimumAge = 18

// OldEnough reports whether age passes the age gate.
func OldEnough(age int) bool {
	return age >= MinimumAge
}
