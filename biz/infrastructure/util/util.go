package util

import (
	"encoding/json"
	"math"

	"github.com/spf13/cast"
)

func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// ParsePrice 解析价格并换算为最小货币单位
// 前端可能传数字也可能传字符串, 四舍五入到分
func ParsePrice(v any) (int64, error) {
	price, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(price * 100)), nil
}
