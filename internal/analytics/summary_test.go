package analytics

import (
	"testing"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// TestSummarize KPI 求和与均值都排除缺失格
func TestSummarize(t *testing.T) {
	records := []*model.OrderRecord{
		{PaidAmount: 30000, NetQty: 2, NetProfit: 10000, UnitSalePrice: 15000},
		{PaidAmount: model.Missing(), NetQty: 1, NetProfit: 0, UnitSalePrice: model.Missing()},
		{PaidAmount: 25000, NetQty: model.Missing(), NetProfit: 7000, UnitSalePrice: 25000},
	}
	s := Summarize(records)

	if s.Records != 3 {
		t.Errorf("records = %d, want 3", s.Records)
	}
	if s.TotalRevenue != 55000 {
		t.Errorf("totalRevenue = %v, want 55000", s.TotalRevenue)
	}
	if s.TotalUnits != 3 {
		t.Errorf("totalUnits = %v, want 3", s.TotalUnits)
	}
	if s.TotalProfit != 17000 {
		t.Errorf("totalProfit = %v, want 17000", s.TotalProfit)
	}
	if s.AvgUnitPrice != 20000 {
		t.Errorf("avgUnitPrice = %v, want 20000 (missing excluded)", s.AvgUnitPrice)
	}
}

// TestSummarizeEmpty 空集 KPI 全零
func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Records != 0 || s.TotalRevenue != 0 || s.AvgUnitPrice != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
}

// TestTopKeywords 词频统计与截断
func TestTopKeywords(t *testing.T) {
	records := []*model.OrderRecord{
		{Keywords: []string{"감귤", "선물세트"}},
		{Keywords: []string{"감귤", "한라봉"}},
		{Keywords: []string{"감귤"}},
	}
	rows := TopKeywords(records, 2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Keyword != "감귤" || rows[0].Count != 3 {
		t.Errorf("top keyword = %+v, want 감귤×3", rows[0])
	}
}

// TestSegments 价格分段与高端分类提升
func TestSegments(t *testing.T) {
	records := []*model.OrderRecord{
		{SellerName: "a", UnitSalePrice: 20000, NetQty: 5},
		{SellerName: "b", UnitSalePrice: 30000, NetQty: 2},
		{SellerName: "c", UnitSalePrice: 40000, NetQty: 1},
		{SellerName: "d", UnitSalePrice: 20000, NetQty: 1, PremiumTier: model.TierPremium},
	}
	report := Segments(records, 25000, 35000, 3)

	if report.Distribution[SegmentEconomy] != 1 {
		t.Errorf("economy = %d, want 1", report.Distribution[SegmentEconomy])
	}
	if report.Distribution[SegmentMid] != 1 {
		t.Errorf("mid = %d, want 1", report.Distribution[SegmentMid])
	}
	// 高价 1 条 + 高端分类提升 1 条
	if report.Distribution[SegmentPremium] != 2 {
		t.Errorf("premium = %d, want 2", report.Distribution[SegmentPremium])
	}
	if top := report.TopSellers[SegmentEconomy]; len(top) != 1 || top[0].Seller != "a" {
		t.Errorf("economy top = %+v, want seller a", top)
	}
}
