package manage

type CreatePaymentIntentReq struct {
	// 前端可能传数字或字符串
	Price any `json:"price"`
}

type CreatePaymentIntentResp struct {
	ClientSecret string `json:"clientSecret"`
}
