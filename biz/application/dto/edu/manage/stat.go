package manage

type StatsResp struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalClasses     int64 `json:"totalClasses"`
	TotalEnrollments int64 `json:"totalEnrollments"`
}
