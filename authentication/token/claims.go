package token

import (
	"github.com/golang-jwt/jwt/v4"
)

// Claims is the fixed claim schema carried by every session token. Decoding
// into a typed struct means a malformed payload fails early instead of
// surfacing as a missing map key later.
type Claims struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}
