package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	accountRepo "mediflow/database/repository/account"
	"mediflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RequireRole validates the bearer token, checks that the stored token hash
// still matches (cache first, database on a miss) and asserts the role claim.
// On success the account ID and role are set in the request context.
func RequireRole(accounts accountRepo.AccountRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, tokenRole, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this resource"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + accountID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			c.Set("accountID", accountID)
			c.Set("role", tokenRole)
			c.Next()
			return
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed, falling back to DB",
				zap.Error(err))
		}

		// Cache miss: verify against the stored hash.
		acct, err := accounts.GetByID(accountID)
		if err != nil || acct == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if acct.TokenHash == "" || acct.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()

		c.Set("accountID", accountID)
		c.Set("role", tokenRole)
		c.Next()
	}
}
