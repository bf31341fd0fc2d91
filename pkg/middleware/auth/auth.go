package auth

import (
	// 外部依赖
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	// 内部引用
	config "github.com/warehub/warehub/service/internal/config"
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	redis "github.com/warehub/warehub/service/pkg/middleware/redis"
	model "github.com/warehub/warehub/service/pkg/model"
)

const (
	USERKEY = "AUTH_USER_KEY"
)

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GetCurrentUser 从上下文中获取当前用户信息
// gin.Context 与普通 context 均可
func GetCurrentUser(ctx context.Context) *model.UserData {
	user, ok := ctx.Value(USERKEY).(*model.UserData)
	if !ok {
		return nil
	}
	return user
}

// WithUser 将用户写入普通 context，供测试与后台任务使用
func WithUser(ctx context.Context, user *model.UserData) context.Context {
	return context.WithValue(ctx, USERKEY, user) //nolint:staticcheck
}

// ValidateToken 校验访问令牌，已校验过的令牌走 redis 缓存
func ValidateToken(ctx context.Context, token string) (*model.UserData, error) {
	cacheKey := tokenCacheKey(token)
	if client := redis.GetClient(); client != nil {
		if raw, err := client.Get(ctx, cacheKey).Bytes(); err == nil {
			user := &model.UserData{}
			if err := json.Unmarshal(raw, user); err == nil {
				return user, nil
			}
		}
	}

	conf := config.Global()
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, code.InvalidToken
		}
		return []byte(conf.Auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		logger.Warnf(ctx, "parse token err: %v", err)
		return nil, code.InvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return nil, code.InvalidToken
	}

	user := &model.UserData{
		ID:   c.Subject,
		Name: c.Name,
		Role: common.Role(c.Role),
	}

	if client := redis.GetClient(); client != nil {
		if raw, err := json.Marshal(user); err == nil {
			ttl := time.Duration(conf.Auth.TokenCacheTTL) * time.Second
			if err := client.Set(ctx, cacheKey, raw, ttl).Err(); err != nil {
				logger.Warnf(ctx, "cache token err: %v", err)
			}
		}
	}

	return user, nil
}

func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "warehub:auth:token:" + hex.EncodeToString(sum[:])
}
