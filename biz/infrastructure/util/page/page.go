package util

import "edu-manage/biz/application/dto/basic"

// ParsePageOpt 解析分页参数, 默认第1页每页10条
func ParsePageOpt(p *basic.PaginationOptions) (skip int64, limit int64) {
	page := int64(1)
	limit = int64(10)

	if p != nil {
		if p.Page != nil && *p.Page > 0 {
			page = *p.Page
		}
		if p.Limit != nil && *p.Limit > 0 {
			limit = *p.Limit
		}
	}
	skip = (page - 1) * limit
	return skip, limit
}

// TotalPages 总页数 ceil(totalItems/limit)
func TotalPages(totalItems, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}
