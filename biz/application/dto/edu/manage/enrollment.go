package manage

type EnrollReq struct {
	StudentEmail  string  `json:"studentEmail"`
	ClassId       string  `json:"classId"`
	Title         string  `json:"title"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	PaymentStatus string  `json:"paymentStatus"`
}

type EnrollResp struct {
	Message    string `json:"message"`
	InsertedId string `json:"insertedId"`
}

type EnrollmentInfo struct {
	Id            string  `json:"_id"`
	StudentEmail  string  `json:"studentEmail"`
	ClassId       string  `json:"classId"`
	Title         string  `json:"title"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	PaymentStatus string  `json:"paymentStatus"`
	EnrolledAt    int64   `json:"enrolledAt"`
}

type CheckEnrollmentReq struct {
	StudentEmail string `query:"studentEmail"`
	ClassId      string `query:"classId"`
}

type EnrollmentHistoryReq struct {
	StudentEmail string `path:"studentEmail"`
}

type MyEnrollmentsReq struct {
	StudentEmail string `query:"studentEmail"`
}
