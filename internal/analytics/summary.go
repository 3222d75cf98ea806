package analytics

import "github.com/gilsanglab/eda2-marketing-dashboard/internal/model"

// Summary 首页 KPI 汇总
type Summary struct {
	Records      int     `json:"records"`
	TotalRevenue float64 `json:"totalRevenue"` // Σ실결제 금액
	TotalUnits   float64 `json:"totalUnits"`   // Σ주문-취소 수량
	TotalProfit  float64 `json:"totalProfit"`  // ΣNetProfit
	AvgUnitPrice float64 `json:"avgUnitPrice"` // 판매단가 均值（缺失格不参与）
}

// Summarize 在有效销售子集上计算 KPI；缺失数值格从求和/均值中排除
func Summarize(records []*model.OrderRecord) Summary {
	s := Summary{Records: len(records)}

	priceSum, priceCount := 0.0, 0
	for _, r := range records {
		if !model.IsMissing(r.PaidAmount) {
			s.TotalRevenue += r.PaidAmount
		}
		if !model.IsMissing(r.NetQty) {
			s.TotalUnits += r.NetQty
		}
		s.TotalProfit += r.NetProfit
		if !model.IsMissing(r.UnitSalePrice) {
			priceSum += r.UnitSalePrice
			priceCount++
		}
	}
	if priceCount > 0 {
		s.AvgUnitPrice = priceSum / float64(priceCount)
	}
	return s
}
