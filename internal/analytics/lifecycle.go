package analytics

import (
	"sort"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// Lifecycle 按月折叠计算卖家生命周期（Active/New/Churned/Retained）
//
// 对时间排序后的月桶做显式累积折叠，累积量为（历史全集, 上月活跃集）：
//   - New     = 当月活跃 − 历史全集
//   - Churned = 上月活跃 − 当月活跃（首月为 0）
//   - Retained = 上月活跃 ∩ 当月活跃
//
// 流失只做单步记忆，不回溯补记；隔月回归的卖家计入 Active 但不再计入 New。
// 月度键缺失的记录只退出当月归属，不影响其他月份。
func Lifecycle(records []*model.OrderRecord) []model.LifecycleRow {
	buckets := make(map[string]map[string]bool)
	for _, r := range records {
		if r.YearMonth == "" || r.SellerName == "" {
			continue
		}
		if buckets[r.YearMonth] == nil {
			buckets[r.YearMonth] = make(map[string]bool)
		}
		buckets[r.YearMonth][r.SellerName] = true
	}
	if len(buckets) == 0 {
		return nil
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	rows := make([]model.LifecycleRow, 0, len(months))
	everSeen := make(map[string]bool)
	var prev map[string]bool

	for _, month := range months {
		current := buckets[month]

		newCount := 0
		for s := range current {
			if !everSeen[s] {
				newCount++
			}
		}

		churned, retained := 0, 0
		for s := range prev {
			if current[s] {
				retained++
			} else {
				churned++
			}
		}

		rows = append(rows, model.LifecycleRow{
			Month:    month,
			Active:   len(current),
			New:      newCount,
			Churned:  churned,
			Retained: retained,
		})

		for s := range current {
			everSeen[s] = true
		}
		prev = current
	}

	return rows
}
