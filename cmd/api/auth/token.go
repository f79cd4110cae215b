package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Identity is the authenticated (userId, username) pair carried by a token.
// The core trusts it verbatim; how it was derived is the identity provider's
// concern.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

var ErrInvalidToken = errors.New("invalid_token")

// Mint encodes an identity as a base64 JSON payload. The token is a plain
// encoding, not a signature: cryptographic verification is out of scope for
// this application.
func Mint(identity Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Parse decodes a token back into an identity. Tokens that do not decode to
// a JSON object with a non-empty id are rejected.
func Parse(token string) (Identity, error) {
	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return Identity{}, ErrInvalidToken
	}
	if identity.ID == "" {
		return Identity{}, ErrInvalidToken
	}
	return identity, nil
}
