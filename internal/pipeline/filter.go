package pipeline

import "github.com/gilsanglab/eda2-marketing-dashboard/internal/model"

// FilterValid 有效销售子集：주문-취소 수량 > 0
//
// 缺失（NaN）与 0、负数一并排除；这是全部下游分析的唯一入口，
// 是视图不是修改，原始记录集保持完整。
func FilterValid(records []*model.OrderRecord) []*model.OrderRecord {
	valid := make([]*model.OrderRecord, 0, len(records))
	for _, r := range records {
		if r.NetQty > 0 { // NaN 比较恒为 false，自然排除
			valid = append(valid, r)
		}
	}
	return valid
}
