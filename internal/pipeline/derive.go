package pipeline

import (
	"strings"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/parser"
)

// deriveFields 计算全部派生字段
//
//   - 净利润 = (판매단가 − 공급단가) × 주문-취소 수량；三列任一整体缺失则全表恒为 0，
//     行级任一操作数缺失该行为 0
//   - 地区分组：광역지역 含首都标记判서울，否则 비서울
//   - 月度键：주문일 可解析时取 YYYY-MM，否则为空（仅该行退出当月同期群）
//   - 关键词：商品名按文字连跑分词
func deriveFields(records []*model.OrderRecord, caps model.Capabilities, capitalMarker string) {
	hasProfit := caps.HasProfitInputs()

	for _, r := range records {
		if hasProfit {
			if model.IsMissing(r.UnitSalePrice) || model.IsMissing(r.UnitSupplyPrice) || model.IsMissing(r.NetQty) {
				r.NetProfit = 0
			} else {
				r.NetProfit = (r.UnitSalePrice - r.UnitSupplyPrice) * r.NetQty
			}
		} else {
			r.NetProfit = 0
		}

		if caps.HasRegion {
			if strings.Contains(r.Region, capitalMarker) {
				r.RegionGroup = model.RegionSeoul
			} else {
				r.RegionGroup = model.RegionNonSeoul
			}
		}

		if caps.HasOrderDate && !r.OrderDate.IsZero() {
			r.YearMonth = r.OrderDate.Format("2006-01")
		}

		if caps.HasProduct {
			r.Keywords = parser.Tokenize(r.ProductName)
		}
	}
}
