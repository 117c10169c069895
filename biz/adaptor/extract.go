package adaptor

import (
	"context"
	"edu-manage/biz/application/dto/basic"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/consts"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUserMeta 从Authorization头解出用户身份
// 没带token返回401错误, token无效或过期返回403错误
func ExtractUserMeta(ctx context.Context) (*basic.UserMeta, error) {
	c, err := ExtractContext(ctx)
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}

	raw := string(c.GetHeader("Authorization"))
	if raw == "" {
		return nil, consts.ErrNotAuthentication
	}
	tokenString := strings.TrimPrefix(raw, "Bearer ")
	if tokenString == "" {
		return nil, consts.ErrNotAuthentication
	}

	user, err := VerifyToken(config.GetConfig().Auth.SecretKey, tokenString)
	if err != nil {
		return nil, consts.ErrForbidden
	}
	return user, nil
}

// GenerateJwtToken 为邮箱签发会话token
func GenerateJwtToken(email string) (string, int64, error) {
	cfg := config.GetConfig()
	return SignToken(cfg.Auth.SecretKey, email, cfg.Auth.AccessExpire)
}

func SignToken(secret, email string, accessExpire int64) (string, int64, error) {
	iat := time.Now().Unix()
	exp := iat + accessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["email"] = email

	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = claims
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}

func VerifyToken(secret, tokenString string) (*basic.UserMeta, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	user := new(basic.UserMeta)
	if err := mapstructure.Decode(token.Claims, user); err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	return user, nil
}
