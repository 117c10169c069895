package payment

import (
	"context"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeClient 封装支付服务商, 只负责创建支付意向
type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(config *config.Config) *StripeClient {
	api := &client.API{}
	api.Init(config.Stripe.SecretKey, nil)
	return &StripeClient{
		api:      api,
		currency: config.Stripe.Currency,
	}
}

// CreateIntent 按最小货币单位创建支付意向, 返回客户端用的secret
func (s *StripeClient) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		log.CtxError(ctx, "创建支付意向失败: %v", err)
		return "", err
	}
	return intent.ClientSecret, nil
}
