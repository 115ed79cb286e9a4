package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cms-backend/internal/cmserr"
)

// JwtUtil 负责令牌的签发与解析
type JwtUtil struct {
	secret []byte
	ttl    time.Duration
}

// NewJwtUtil 创建 JwtUtil；ttlMinutes<=0 时默认 120 分钟
func NewJwtUtil(secret string, ttlMinutes int) *JwtUtil {
	if ttlMinutes <= 0 {
		ttlMinutes = 120
	}
	return &JwtUtil{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

type loginClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Generate 签发令牌，载荷中包含用户ID和用户名
func (j *JwtUtil) Generate(userID int64, username string) (string, error) {
	now := time.Now()
	claims := loginClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// Parse 校验令牌并取出载荷
func (j *JwtUtil) Parse(tokenStr string) (int64, string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &loginClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", cmserr.TokenExpired
		}
		return 0, "", cmserr.TokenSignatureError
	}
	claims, ok := token.Claims.(*loginClaims)
	if !ok || !token.Valid {
		return 0, "", cmserr.TokenSignatureError
	}
	return claims.UserID, claims.Username, nil
}
