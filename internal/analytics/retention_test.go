package analytics

import (
	"testing"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

func retentionCaps() model.Capabilities {
	return model.Capabilities{HasUID: true, HasSeller: true}
}

func orderRecords(seller string, uidOrders map[string]int) []*model.OrderRecord {
	var records []*model.OrderRecord
	for uid, n := range uidOrders {
		for i := 0; i < n; i++ {
			records = append(records, &model.OrderRecord{SellerName: seller, UID: uid})
		}
	}
	return records
}

// TestRetentionRate 复购率 = 下单 >1 次的买家 ÷ 买家总数 × 100
func TestRetentionRate(t *testing.T) {
	// 4 个买家，其中 1 个复购
	records := orderRecords("s", map[string]int{"u1": 3, "u2": 1, "u3": 1, "u4": 1})
	rows := Retention(records, retentionCaps(), 4)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Buyers != 4 || r.Repurchasers != 1 {
		t.Errorf("buyers/repurchasers = %d/%d, want 4/1", r.Buyers, r.Repurchasers)
	}
	if r.Rate != 25 {
		t.Errorf("rate = %v, want 25", r.Rate)
	}
}

// TestRetentionMinBuyers 买家数低于阈值的卖家不进入排名
func TestRetentionMinBuyers(t *testing.T) {
	records := append(
		orderRecords("big", map[string]int{"u1": 2, "u2": 1, "u3": 1}),
		orderRecords("small", map[string]int{"u4": 2})...,
	)

	rows := Retention(records, retentionCaps(), 3)
	if len(rows) != 1 || rows[0].Seller != "big" {
		t.Fatalf("rows = %+v, want only big", rows)
	}

	// 阈值 1 时两个卖家都在
	rows = Retention(records, retentionCaps(), 1)
	if len(rows) != 2 {
		t.Errorf("rows = %d, want 2 with min=1", len(rows))
	}
}

// TestRetentionRateBounds 复购率始终落在 [0,100]
func TestRetentionRateBounds(t *testing.T) {
	records := append(
		orderRecords("none", map[string]int{"u1": 1, "u2": 1}),
		orderRecords("all", map[string]int{"u3": 2, "u4": 5})...,
	)
	for _, r := range Retention(records, retentionCaps(), 1) {
		if r.Rate < 0 || r.Rate > 100 {
			t.Errorf("rate %v out of [0,100]", r.Rate)
		}
	}
}

// TestRetentionMissingColumns UID 或 셀러명 列缺失时返回空
func TestRetentionMissingColumns(t *testing.T) {
	records := orderRecords("s", map[string]int{"u1": 2})
	if rows := Retention(records, model.Capabilities{HasSeller: true}, 1); rows != nil {
		t.Errorf("rows = %v, want nil without UID column", rows)
	}
}
