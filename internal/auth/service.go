package auth

import (
    "context"
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/smis-portal/smis-back/internal/models"
)

// TokenLifetime is fixed; there is no refresh flow, an expired token means
// logging in again.
const TokenLifetime = time.Hour

// TeacherStore is the slice of the store the auth gate needs.
type TeacherStore interface {
    TeacherByUsername(ctx context.Context, username string) (*models.Teacher, error)
}

// IssueToken signs a bearer token carrying the teacher's id and username.
func IssueToken(secret []byte, t *models.Teacher) (string, error) {
    claims := jwt.MapClaims{
        "id":       t.ID,
        "username": t.Username,
        "exp":      time.Now().Add(TokenLifetime).Unix(),
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the embedded
// identity. Any failure mode (bad signature, expired, wrong method) is
// reported the same way; callers only need valid/invalid.
func ParseToken(secret []byte, tokenStr string) (teacherID uint, username string, err error) {
    token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
        if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, jwt.ErrSignatureInvalid
        }
        return secret, nil
    })
    if err != nil {
        return 0, "", err
    }
    if !token.Valid {
        return 0, "", jwt.ErrTokenUnverifiable
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return 0, "", jwt.ErrTokenInvalidClaims
    }
    id, ok := claims["id"].(float64)
    if !ok {
        return 0, "", jwt.ErrTokenInvalidClaims
    }
    name, ok := claims["username"].(string)
    if !ok {
        return 0, "", jwt.ErrTokenInvalidClaims
    }
    return uint(id), name, nil
}
