package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionPurpose = "pin-session"

type sessionClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (handler *Handler) checkPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword(handler.pinHash, []byte(pin)) == nil
}

func (handler *Handler) issueSessionToken(now time.Time) (string, error) {
	claims := sessionClaims{
		Purpose: sessionPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, sessionTokenTTLDays)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseSessionToken(tokenString string) error {
	if tokenString == "" {
		return errors.New("missing session token")
	}

	claims := sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid session token")
	}
	if claims.Purpose != sessionPurpose {
		return errors.New("wrong token purpose")
	}
	return nil
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  now.AddDate(0, 0, sessionTokenTTLDays),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  now.Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}
