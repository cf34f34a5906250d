package models

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims issued by the host's identity provider.
type Claims struct {
	jwt.RegisteredClaims                        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string                 `json:"email"`
	Role                 string                 `json:"role"` // "authenticated" or "anon"
	AppMetadata          map[string]interface{} `json:"app_metadata"`
	SessionID            string                 `json:"session_id"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *Claims) GetUserID() string {
	return c.Subject
}

// IsAdmin reports whether the app_metadata roles list grants the
// administrative role required to reorganize a project.
func (c *Claims) IsAdmin() bool {
	roles, ok := c.AppMetadata["roles"].([]interface{})
	if !ok {
		return false
	}
	for _, role := range roles {
		if name, ok := role.(string); ok && name == "admin" {
			return true
		}
	}
	return false
}
