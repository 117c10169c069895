package service

import (
	"context"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"edu-manage/biz/infrastructure/payment"
	"edu-manage/biz/infrastructure/util"
	"edu-manage/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IPaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *manage.CreatePaymentIntentReq) (*manage.CreatePaymentIntentResp, error)
}

type PaymentService struct {
	StripeClient *payment.StripeClient
}

var PaymentServiceSet = wire.NewSet(
	wire.Struct(new(PaymentService), "*"),
	wire.Bind(new(IPaymentService), new(*PaymentService)),
)

// CreatePaymentIntent 创建支付意向, 价格换算成最小货币单位
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req *manage.CreatePaymentIntentReq) (*manage.CreatePaymentIntentResp, error) {
	if req.Price == nil {
		return nil, consts.ErrInvalidPrice
	}
	amount, err := util.ParsePrice(req.Price)
	if err != nil || amount <= 0 {
		return nil, consts.ErrInvalidPrice
	}

	clientSecret, err := s.StripeClient.CreateIntent(ctx, amount)
	if err != nil {
		log.CtxError(ctx, "支付服务商调用失败: %v", err)
		return nil, consts.ErrPayment
	}

	return &manage.CreatePaymentIntentResp{ClientSecret: clientSecret}, nil
}
