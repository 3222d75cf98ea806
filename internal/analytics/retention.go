// Package analytics 在有效销售子集上计算同期群与经营指标：
// 卖家复购率、按月生命周期、KPI 汇总、关键词词频与价格分段。
package analytics

import (
	"sort"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// Retention 计算卖家复购率并按复购率降序排列
//
// 复购率 = 在该卖家下单 >1 次的去重买家数 ÷ 去重买家总数 × 100；
// 买家数低于 minBuyers 的卖家不进入排名（阈值由调用方给定：
// 常规报表 10，深度分析 50）。UID 或 셀러명 列缺失时返回空。
func Retention(records []*model.OrderRecord, caps model.Capabilities, minBuyers int) []model.SellerRetentionRow {
	if !caps.HasUID || !caps.HasSeller {
		return nil
	}

	// 卖家 → 买家 → 订单数
	orders := make(map[string]map[string]int)
	for _, r := range records {
		if r.SellerName == "" || r.UID == "" {
			continue
		}
		if orders[r.SellerName] == nil {
			orders[r.SellerName] = make(map[string]int)
		}
		orders[r.SellerName][r.UID]++
	}

	rows := make([]model.SellerRetentionRow, 0, len(orders))
	for seller, buyers := range orders {
		if len(buyers) < minBuyers {
			continue
		}
		repurchasers := 0
		for _, n := range buyers {
			if n > 1 {
				repurchasers++
			}
		}
		rows = append(rows, model.SellerRetentionRow{
			Seller:       seller,
			Buyers:       len(buyers),
			Repurchasers: repurchasers,
			Rate:         float64(repurchasers) / float64(len(buyers)) * 100,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Rate != rows[j].Rate {
			return rows[i].Rate > rows[j].Rate
		}
		return rows[i].Seller < rows[j].Seller
	})
	return rows
}
