package manage

type SubmitFeedbackReq struct {
	StudentEmail string  `json:"studentEmail"`
	ClassId      string  `json:"classId"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating"`
	Image        string  `json:"image"`
}

type SubmitFeedbackResp struct {
	Message string `json:"message"`
	Id      string `json:"id"`
}

type FeedbackInfo struct {
	Id           string  `json:"_id"`
	StudentEmail string  `json:"studentEmail"`
	ClassId      string  `json:"classId"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating"`
	Image        *string `json:"image"`
	CreatedAt    int64   `json:"createdAt"`
}
