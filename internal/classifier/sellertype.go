package classifier

import "github.com/gilsanglab/eda2-marketing-dashboard/internal/model"

// classifySellerType 区域卖家/一般卖家二分类
//
// 某单一地区占该卖家有效销售记录数 ≥ 50% 即判为区域卖家，恰好 50% 也算；
// 地区为空的行计入分母但不计入任何地区。셀러명 或 광역지역 列缺失时整列为一般卖家。
func classifySellerType(records []*model.OrderRecord, caps model.Capabilities) {
	if !caps.HasSeller || !caps.HasRegion {
		for _, r := range records {
			r.SellerType = model.SellerGeneral
		}
		return
	}

	totals := make(map[string]int)
	regionCounts := make(map[string]map[string]int)
	for _, r := range records {
		if r.SellerName == "" {
			continue
		}
		totals[r.SellerName]++
		if r.Region == "" {
			continue
		}
		if regionCounts[r.SellerName] == nil {
			regionCounts[r.SellerName] = make(map[string]int)
		}
		regionCounts[r.SellerName][r.Region]++
	}

	regional := make(map[string]bool, len(totals))
	for seller, total := range totals {
		for _, n := range regionCounts[seller] {
			if float64(n)/float64(total) >= 0.5 {
				regional[seller] = true
				break
			}
		}
	}

	for _, r := range records {
		if regional[r.SellerName] {
			r.SellerType = model.SellerRegional
		} else {
			r.SellerType = model.SellerGeneral
		}
	}
}
