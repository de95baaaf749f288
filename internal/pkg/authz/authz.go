// Package authz holds the two authorization policies applied to mutating
// routes. Catalog collections (movies, games) are admin-managed; user content
// (comments, wishlists, favorites) is gated on the owner field of the fetched
// document. Handlers resolve existence before calling either policy, so an
// unknown id is reported as 404 rather than 403.
package authz

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amestri/cineshelf/internal/features/users"
	"github.com/amestri/cineshelf/internal/pkg/response"
	"github.com/amestri/cineshelf/pkg/errors"
)

// RequireOwnership allows the mutation iff the resource's owner field equals
// the caller's id.
func RequireOwnership(caller *users.User, owner primitive.ObjectID) error {
	if caller == nil {
		return errors.ErrUnauthenticated
	}
	if caller.ID != owner {
		return fmt.Errorf("caller does not own this resource: %w", errors.ErrForbidden)
	}
	return nil
}

// RequireAdmin allows the mutation iff the caller carries the admin flag.
// Ownership is not consulted.
func RequireAdmin(caller *users.User) error {
	if caller == nil {
		return errors.ErrUnauthenticated
	}
	if !caller.IsAdmin {
		return fmt.Errorf("admin privileges required: %w", errors.ErrForbidden)
	}
	return nil
}

// AdminOnly is the route-level form of RequireAdmin for collection endpoints
// that have no resource to resolve first (list, create). Mutations addressed
// by id keep the check in the handler, after the existence lookup.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := RequireAdmin(users.Current(c)); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
