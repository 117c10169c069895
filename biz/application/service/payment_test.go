package service

import (
	"context"
	"edu-manage/biz/application/dto/edu/manage"
	"edu-manage/biz/infrastructure/consts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePaymentIntentRejectsBadPrice(t *testing.T) {
	s := &PaymentService{}

	cases := []struct {
		name  string
		price any
	}{
		{"nil price", nil},
		{"zero price", 0},
		{"negative price", -5},
		{"unparseable price", "free"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &manage.CreatePaymentIntentReq{Price: tc.price}
			_, err := s.CreatePaymentIntent(context.Background(), req)
			assert.ErrorIs(t, err, consts.ErrInvalidPrice)
		})
	}
}
