package ports

import "github.com/userdash/dashboard-backend/internal/domain"

// TokenService issues and parses the bearer tokens that carry the
// acting user between requests.
type TokenService interface {
	Issue(actor domain.Actor) (string, error)
	Parse(token string) (domain.Actor, error)
}
