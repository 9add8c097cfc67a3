package utils

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

const sessionIssuer = "postdeck"

// GenerateSessionToken signs the session cookie payload. The token carries no
// expiry: whether the session is still valid is for the API to decide.
func GenerateSessionToken(secretKey, sessionID, encryptedToken string) (string, error) {
	claims := transfer.SessionClaims{
		SessionID: sessionID,
		Token:     encryptedToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return signedToken, nil
}

func ValidateSessionToken(secretKey, tokenString string) (*transfer.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &transfer.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(sessionIssuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*transfer.SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
