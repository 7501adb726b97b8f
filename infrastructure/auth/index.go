// Package auth mints and verifies the HS256 access tokens issued on login.
package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"verilearn.io/entities"
)

const defaultTokenTTL = 10 * time.Hour

type ClaimsData struct {
	IDCard    string
	FirstName string
	Role      entities.StudentRole
}

func tokenTTL() time.Duration {
	if minutes, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MINUTES")); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return defaultTokenTTL
}

func GenerateAuthToken(claimsData ClaimsData) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"idCard":    claimsData.IDCard,
		"firstName": claimsData.FirstName,
		"role":      string(claimsData.Role),
		"iss":       "verilearn",
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(tokenTTL()).Unix(),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &signed, nil
}

func DecodeAuthToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
}
