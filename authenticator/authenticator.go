package authenticator

import (
	"context"
	"errors"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Identity is the part of the claims the viewer keeps in the session
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// Identity extracts the subject, email and display name from the claims
func (c Claims) Identity() (Identity, error) {
	sub, _ := c["sub"].(string)
	if sub == "" {
		return Identity{}, errors.New("claims carry no subject")
	}

	id := Identity{Subject: sub}
	id.Email, _ = c["email"].(string)

	// Try nickname, then name, then email, then sub
	for _, key := range []string{"nickname", "name"} {
		if v, ok := c[key].(string); ok && v != "" {
			id.Name = v
			break
		}
	}
	if id.Name == "" {
		id.Name = id.Email
	}
	if id.Name == "" {
		id.Name = sub
	}

	return id, nil
}
