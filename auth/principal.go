package auth

import (
	"strconv"

	"github.com/go-pkgz/auth/v2/token"
)

// Principal is the authenticated identity for the current request. It is
// resolved once at the boundary and passed to services explicitly.
type Principal struct {
	ID    uint
	Email string
	Name  string
}

// PrincipalFromToken converts validated token claims into a Principal.
func PrincipalFromToken(u token.User) (Principal, error) {
	id, err := strconv.ParseUint(u.ID, 10, 32)
	if err != nil {
		return Principal{}, err
	}
	return Principal{ID: uint(id), Email: u.Email, Name: u.Name}, nil
}
