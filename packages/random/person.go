package random

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// FullName returns a random person name.
func FullName() string {
	return gofakeit.Name()
}

// FirstName returns a random first name.
func FirstName() string {
	return gofakeit.FirstName()
}

// LastName returns a random last name.
func LastName() string {
	return gofakeit.LastName()
}

// City returns a random city name.
func City() string {
	return gofakeit.City()
}

// Company returns a random company name.
func Company() string {
	return gofakeit.Company()
}

// JobTitle returns a random job title.
func JobTitle() string {
	return gofakeit.JobTitle()
}

// Address returns a random single-line street address.
func Address() string {
	a := gofakeit.Address()
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}
