package classifier

import (
	"testing"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

func fullCaps() model.Capabilities {
	return model.Capabilities{
		HasProduct: true, HasOption: true, HasVariety: true, HasFruitSize: true,
		HasSeller: true, HasPayment: true, HasRegion: true,
	}
}

// TestPremiumTangerineRoyal 감귤 × 로얄과 应判高端，小果规格应判普通
func TestPremiumTangerineRoyal(t *testing.T) {
	records := []*model.OrderRecord{
		{Variety: "감귤", FruitSize: "로얄과"},
		{Variety: "감귤", FruitSize: "소과"},
	}
	classifyPremium(records, fullCaps())

	if records[0].PremiumTier != model.TierPremium {
		t.Errorf("감귤×로얄과 = %s, want %s", records[0].PremiumTier, model.TierPremium)
	}
	if records[1].PremiumTier != model.TierStandard {
		t.Errorf("감귤×소과 = %s, want %s", records[1].PremiumTier, model.TierStandard)
	}
}

// TestPremiumGiftMarker 商品名或客户选项含礼盒标记即判高端
func TestPremiumGiftMarker(t *testing.T) {
	records := []*model.OrderRecord{
		{ProductName: "제주 감귤 선물세트 3kg"},
		{ProductName: "일반 감귤", Option: "선물용 포장"},
		{ProductName: "일반 감귤"},
	}
	classifyPremium(records, fullCaps())

	if records[0].PremiumTier != model.TierPremium {
		t.Error("상품명 gift marker should classify premium")
	}
	if records[1].PremiumTier != model.TierPremium {
		t.Error("고객선택옵션 gift marker should classify premium")
	}
	if records[2].PremiumTier != model.TierStandard {
		t.Error("no marker should classify standard")
	}
}

// TestPremiumLateVarieties 晚柑类品种 × 中果以上规格
func TestPremiumLateVarieties(t *testing.T) {
	cases := []struct {
		variety, size string
		want          string
	}{
		{"한라봉", "대과", model.TierPremium},
		{"천혜향", "중과", model.TierPremium},
		{"레드향", "중대과", model.TierPremium},
		{"황금향", "소과", model.TierStandard},
		{"노지귤", "대과", model.TierStandard},
	}
	for _, c := range cases {
		records := []*model.OrderRecord{{Variety: c.variety, FruitSize: c.size}}
		classifyPremium(records, fullCaps())
		if records[0].PremiumTier != c.want {
			t.Errorf("%s×%s = %s, want %s", c.variety, c.size, records[0].PremiumTier, c.want)
		}
	}
}

// TestPremiumMissingColumns 规则依赖列缺失时仅该规则失效
func TestPremiumMissingColumns(t *testing.T) {
	// 품종/과수 크기 列缺失：规则 2/3 不可用，礼盒标记仍生效
	caps := model.Capabilities{HasProduct: true}
	records := []*model.OrderRecord{
		{ProductName: "감귤 선물세트", Variety: "감귤", FruitSize: "로얄과"},
		{ProductName: "일반 감귤", Variety: "감귤", FruitSize: "로얄과"},
	}
	classifyPremium(records, caps)

	if records[0].PremiumTier != model.TierPremium {
		t.Error("gift rule should still apply without variety/size columns")
	}
	if records[1].PremiumTier != model.TierStandard {
		t.Error("variety rule must not fire when its columns are absent")
	}

	// 全部依赖列缺失：一律普通
	var none model.Capabilities
	records = []*model.OrderRecord{{ProductName: "선물세트"}}
	classifyPremium(records, none)
	if records[0].PremiumTier != model.TierStandard {
		t.Error("all rules absent should default to standard")
	}
}
