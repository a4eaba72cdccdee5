package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopmill/shopmill-backend-go/config"
	"github.com/shopmill/shopmill-backend-go/utils"
)

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = 7 * 24 * time.Hour

type JWTClaims struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	jwt.StandardClaims
}

// Authenticate rejects requests without a valid bearer token and attaches
// the caller's identity to the request context.
func Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if token == "" {
			return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Access denied, no token provided", nil))
		}

		claims := &JWTClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.Get().JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Access denied, invalid token", nil))
		}

		userID, err := primitive.ObjectIDFromHex(claims.ID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Access denied, invalid token", nil))
		}

		c.Set("userID", userID)
		c.Set("userEmail", claims.Email)
		return next(c)
	}
}

// GenerateToken signs a token carrying the user's identity.
func GenerateToken(userID primitive.ObjectID, email string) (string, error) {
	claims := &JWTClaims{
		ID:    userID.Hex(),
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Get().JWTSecret))
}

// UserID returns the authenticated caller's id from the request context.
func UserID(c echo.Context) (primitive.ObjectID, bool) {
	userID, ok := c.Get("userID").(primitive.ObjectID)
	return userID, ok
}
