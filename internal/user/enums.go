package user

import "fmt"

// Gender and Role are the two fixed choice lists. Codes are 1-based and
// labels are resolved explicitly, an unknown code is an error rather than an
// out-of-range index.

type Gender int

const (
	GenderFemale Gender = 1
	GenderMale   Gender = 2
)

func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale
}

func (g Gender) Label() (string, error) {
	switch g {
	case GenderFemale:
		return "Femenino", nil
	case GenderMale:
		return "Masculino", nil
	default:
		return "", fmt.Errorf("unknown gender code: %d", g)
	}
}

type Role int

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) Label() (string, error) {
	switch r {
	case RoleAdmin:
		return "Administrador", nil
	case RoleUser:
		return "Usuario", nil
	default:
		return "", fmt.Errorf("unknown role code: %d", r)
	}
}
