package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs a token carrying the user identity and admin flag.
func GenerateToken(userID uint, admin bool, secret string, expTime int64) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userID"] = userID
	claims["admin"] = admin
	claims["exp"] = expTime

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken validates the signature and returns the user identity.
func VerifyToken(tokenString string, secret string) (uint, bool, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, false, err
	}

	if !token.Valid {
		return 0, false, jwt.ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, errors.New("unexpected claims type")
	}

	rawID, ok := claims["userID"].(float64)
	if !ok {
		return 0, false, errors.New("token has no userID claim")
	}
	admin, _ := claims["admin"].(bool)

	return uint(rawID), admin, nil
}
