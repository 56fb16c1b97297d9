package middleware

import (
	"log"
	"net/http"
	"strings"

	"job_engagement/internal/domain/entities"
	"job_engagement/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"

	actorKey = "actor"
)

// RequireActor reads the calling party from the actor headers. Only
// customers and companies may call the API; the system role is reserved
// for payment confirmation inside the service.
//
// The headers are trusted as sent. Authenticating them belongs to the
// gateway in front of this service.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.ActorRole(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole))))
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))

		if id == "" || (role != entities.ActorCustomer && role != entities.ActorCompany) {
			log.Printf("[actor][middleware] rejected path=%s role=%q id_present=%t", c.FullPath(), role, id != "")
			appErr := pkg.NewDomainErrorSimple("ACTOR_REQUIRED", "X-Actor-Role (customer|company) and X-Actor-ID headers are required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(actorKey, entities.Actor{Role: role, ID: id})
		c.Next()
	}
}

// ActorFrom returns the actor stored by RequireActor.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
