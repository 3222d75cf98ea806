package classifier

import (
	"sort"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// GradeFor 按营收百分位定级：升序阈值，边界归入更优等级
func GradeFor(percentile float64) string {
	switch {
	case percentile <= 0.10:
		return "A"
	case percentile <= 0.30:
		return "B"
	case percentile <= 0.60:
		return "C"
	default:
		return "D"
	}
}

// GradeTable 计算有效销售子集上的卖家营收分级表
//
// 营收口径为 Σ결제금액（缺失格不计入）；
// 排名为并列取最小名次（同营收同名次、同等级），百分位 = 名次 / 卖家总数。
func GradeTable(records []*model.OrderRecord, caps model.Capabilities) []model.SellerGradeRow {
	if !caps.HasSeller || !caps.HasPayment {
		return nil
	}

	totals := make(map[string]float64)
	for _, r := range records {
		if r.SellerName == "" {
			continue
		}
		if _, ok := totals[r.SellerName]; !ok {
			totals[r.SellerName] = 0
		}
		if !model.IsMissing(r.PaymentAmount) {
			totals[r.SellerName] += r.PaymentAmount
		}
	}
	if len(totals) == 0 {
		return nil
	}

	rows := make([]model.SellerGradeRow, 0, len(totals))
	for seller, total := range totals {
		rows = append(rows, model.SellerGradeRow{Seller: seller, Revenue: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].Seller < rows[j].Seller
	})

	// 并列最小名次：营收与前一名相同则继承其名次
	count := len(rows)
	for i := range rows {
		if i > 0 && rows[i].Revenue == rows[i-1].Revenue {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
		rows[i].Percentile = float64(rows[i].Rank) / float64(count)
		rows[i].Grade = GradeFor(rows[i].Percentile)
	}

	return rows
}

// classifyGrades 计算分级表并广播到每条记录
//
// 셀러명 或 결제금액 列缺失时整列降级为 D。
func classifyGrades(records []*model.OrderRecord, caps model.Capabilities) []model.SellerGradeRow {
	table := GradeTable(records, caps)
	grades := make(map[string]string, len(table))
	for _, row := range table {
		grades[row.Seller] = row.Grade
	}

	for _, r := range records {
		if g, ok := grades[r.SellerName]; ok {
			r.SellerGrade = g
		} else {
			r.SellerGrade = "D"
		}
	}
	return table
}
