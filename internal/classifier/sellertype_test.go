package classifier

import (
	"testing"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// TestSellerTypeExactHalf 恰好 50% 集中度也判区域卖家
func TestSellerTypeExactHalf(t *testing.T) {
	records := []*model.OrderRecord{
		{SellerName: "s", Region: "제주"},
		{SellerName: "s", Region: "제주"},
		{SellerName: "s", Region: "서울"},
		{SellerName: "s", Region: "부산"},
	}
	classifySellerType(records, model.Capabilities{HasSeller: true, HasRegion: true})

	for _, r := range records {
		if r.SellerType != model.SellerRegional {
			t.Fatalf("sellerType = %s, want %s at exactly 50%%", r.SellerType, model.SellerRegional)
		}
	}
}

// TestSellerTypeBelowHalf 集中度不足 50% 判一般卖家
func TestSellerTypeBelowHalf(t *testing.T) {
	records := []*model.OrderRecord{
		{SellerName: "s", Region: "제주"},
		{SellerName: "s", Region: "서울"},
		{SellerName: "s", Region: "부산"},
	}
	classifySellerType(records, model.Capabilities{HasSeller: true, HasRegion: true})

	if records[0].SellerType != model.SellerGeneral {
		t.Errorf("sellerType = %s, want %s", records[0].SellerType, model.SellerGeneral)
	}
}

// TestSellerTypePerSeller 分类按卖家独立判定再广播
func TestSellerTypePerSeller(t *testing.T) {
	records := []*model.OrderRecord{
		{SellerName: "regional", Region: "제주"},
		{SellerName: "regional", Region: "제주"},
		{SellerName: "general", Region: "제주"},
		{SellerName: "general", Region: "서울"},
		{SellerName: "general", Region: "부산"},
	}
	classifySellerType(records, model.Capabilities{HasSeller: true, HasRegion: true})

	if records[0].SellerType != model.SellerRegional {
		t.Error("regional seller misclassified")
	}
	if records[2].SellerType != model.SellerGeneral {
		t.Error("general seller misclassified")
	}
}

// TestSellerTypeMissingRegion 광역지역 列缺失时整列一般卖家
func TestSellerTypeMissingRegion(t *testing.T) {
	records := []*model.OrderRecord{{SellerName: "s", Region: "제주"}}
	classifySellerType(records, model.Capabilities{HasSeller: true})
	if records[0].SellerType != model.SellerGeneral {
		t.Errorf("sellerType = %s, want %s when region column absent", records[0].SellerType, model.SellerGeneral)
	}
}

// TestSellerTypeEmptyRegionRows 地区为空的行计入分母
func TestSellerTypeEmptyRegionRows(t *testing.T) {
	// 제주 2/5 = 40%，空地区行摊薄集中度
	records := []*model.OrderRecord{
		{SellerName: "s", Region: "제주"},
		{SellerName: "s", Region: "제주"},
		{SellerName: "s", Region: ""},
		{SellerName: "s", Region: ""},
		{SellerName: "s", Region: ""},
	}
	classifySellerType(records, model.Capabilities{HasSeller: true, HasRegion: true})
	if records[0].SellerType != model.SellerGeneral {
		t.Errorf("sellerType = %s, want %s", records[0].SellerType, model.SellerGeneral)
	}
}
