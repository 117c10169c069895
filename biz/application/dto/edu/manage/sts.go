package manage

type GenUploadUrlReq struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type GenUploadUrlResp struct {
	UploadUrl string `json:"uploadUrl"`
	FileUrl   string `json:"fileUrl"`
}
