package analytics

import (
	"sort"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// 价格分段标签
const (
	SegmentEconomy = "Economy"
	SegmentMid     = "Mid"
	SegmentPremium = "Premium"
)

// SegmentSeller 分段内按销量排序的卖家
type SegmentSeller struct {
	Seller string  `json:"seller"`
	Units  float64 `json:"units"`
}

// SegmentReport 价格分段报告
type SegmentReport struct {
	Distribution map[string]int             `json:"distribution"`
	TopSellers   map[string][]SegmentSeller `json:"topSellers"`
}

// SegmentOf 单条记录的价格分段：
// 판매단가 ≤ economyMax 为 Economy，≥ premiumMin 或已判高端为 Premium，其余为 Mid。
// 单价缺失按 Mid 处理，但高端分类仍可将其提升为 Premium。
func SegmentOf(r *model.OrderRecord, economyMax, premiumMin float64) string {
	if r.PremiumTier == model.TierPremium {
		return SegmentPremium
	}
	if model.IsMissing(r.UnitSalePrice) {
		return SegmentMid
	}
	if r.UnitSalePrice >= premiumMin {
		return SegmentPremium
	}
	if r.UnitSalePrice <= economyMax {
		return SegmentEconomy
	}
	return SegmentMid
}

// Segments 计算分段分布与各分段销量前 top 卖家
func Segments(records []*model.OrderRecord, economyMax, premiumMin float64, top int) SegmentReport {
	report := SegmentReport{
		Distribution: map[string]int{SegmentEconomy: 0, SegmentMid: 0, SegmentPremium: 0},
		TopSellers:   make(map[string][]SegmentSeller),
	}

	units := map[string]map[string]float64{
		SegmentEconomy: {},
		SegmentMid:     {},
		SegmentPremium: {},
	}
	for _, r := range records {
		seg := SegmentOf(r, economyMax, premiumMin)
		report.Distribution[seg]++
		if r.SellerName != "" && !model.IsMissing(r.NetQty) {
			units[seg][r.SellerName] += r.NetQty
		}
	}

	for seg, sellers := range units {
		rows := make([]SegmentSeller, 0, len(sellers))
		for s, u := range sellers {
			rows = append(rows, SegmentSeller{Seller: s, Units: u})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Units != rows[j].Units {
				return rows[i].Units > rows[j].Units
			}
			return rows[i].Seller < rows[j].Seller
		})
		if top > 0 && len(rows) > top {
			rows = rows[:top]
		}
		report.TopSellers[seg] = rows
	}

	return report
}
