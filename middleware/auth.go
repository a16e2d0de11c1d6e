package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	providerRepo "hudumahub/database/repository/provider"
	userRepo "hudumahub/database/repository/user"
	"hudumahub/models"
	"hudumahub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func abortUnauthorized(c *gin.Context, message string) {
	utils.JSONError(c, http.StatusUnauthorized, message, "")
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// checkTokenHash validates the computed token hash against the auth cache,
// falling back to the stored hash when the cache misses. Returns whether the
// token is valid.
func checkTokenHash(ctx context.Context, subjectID, computedHash string, lookupStored func() (string, error)) bool {
	cacheKey := utils.AuthCachePrefix + subjectID

	authCache := utils.GetAuthCacheClient()
	cacheEnabled := authCache != nil
	if !cacheEnabled {
		log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
	}

	if cacheEnabled {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return true
			}
			return false
		} else if err != redis.Nil {
			log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
		}
	}

	storedHash, err := lookupStored()
	if err != nil || storedHash == "" || storedHash != computedHash {
		return false
	}

	if cacheEnabled {
		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	}
	return true
}

// JWTAuthUserMiddleware authenticates customer requests and sets "userID" on
// the context.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != models.RoleUser {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		computedHash := utils.HashToken(tokenString)
		ok := checkTokenHash(context.Background(), subject, computedHash, func() (string, error) {
			u, err := users.GetByID(subject)
			if err != nil || u == nil {
				return "", err
			}
			return u.TokenHash, nil
		})
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		c.Set("userID", subject)
		c.Next()
	}
}

// JWTAuthProviderMiddleware authenticates provider requests and sets
// "providerID" on the context.
func JWTAuthProviderMiddleware(providers providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != models.RoleProvider {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		computedHash := utils.HashToken(tokenString)
		ok := checkTokenHash(context.Background(), subject, computedHash, func() (string, error) {
			p, err := providers.GetByID(subject)
			if err != nil || p == nil {
				return "", err
			}
			return p.TokenHash, nil
		})
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		c.Set("providerID", subject)
		c.Next()
	}
}
