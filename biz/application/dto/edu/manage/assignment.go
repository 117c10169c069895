package manage

type CreateAssignmentReq struct {
	ClassId     string `json:"classId"`
	Title       string `json:"title"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CreateAssignmentResp struct {
	Message string `json:"message"`
	Id      string `json:"id"`
}

type AssignmentInfo struct {
	Id              string `json:"_id"`
	ClassId         string `json:"classId"`
	Title           string `json:"title"`
	Deadline        string `json:"deadline"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	SubmissionCount int64  `json:"submissionCount"`
	CreatedAt       int64  `json:"createdAt"`
}

type ListAssignmentsReq struct {
	ClassId string `query:"classId"`
}

type CountByClassReq struct {
	ClassId string `path:"classId"`
}

type CountResp struct {
	Count int64 `json:"count"`
}

type IncrementSubmissionReq struct {
	Id string `path:"id"`
}

type IncrementSubmissionResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SubmitAssignmentReq struct {
	AssignmentId   string `json:"assignmentId"`
	ClassId        string `json:"classId"`
	StudentEmail   string `json:"studentEmail"`
	SubmissionText string `json:"submissionText"`
	SubmittedAt    string `json:"submittedAt"`
}

type SubmitAssignmentResp struct {
	Message string `json:"message"`
	Id      string `json:"id"`
}

type SubmissionInfo struct {
	Id             string `json:"_id"`
	AssignmentId   string `json:"assignmentId"`
	ClassId        string `json:"classId"`
	StudentEmail   string `json:"studentEmail"`
	SubmissionText string `json:"submissionText"`
	SubmittedAt    int64  `json:"submittedAt"`
}

type SubmissionsCountResp struct {
	TotalSubmissions int64 `json:"totalSubmissions"`
}
