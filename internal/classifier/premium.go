package classifier

import (
	"strings"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// 高端分类规则常量（来自运营口径）
var (
	giftMarkers = []string{"선물세트", "선물용"}

	// 晚柑类四个高端品种
	premiumVarieties = map[string]bool{
		"황금향": true,
		"한라봉": true,
		"레드향": true,
		"천혜향": true,
	}
	premiumSizes = map[string]bool{
		"중과":  true,
		"중대과": true,
		"대과":  true,
	}
)

// classifyPremium 高端/普通二分类，三条规则取逻辑或：
//  1. 商品名或客户选项含礼盒标记
//  2. 품종=감귤 且 과수 크기=로얄과
//  3. 晚柑类品种 × 中果以上规格
//
// 某条规则依赖的列整体缺失时仅该条恒不命中，不影响其余规则。
func classifyPremium(records []*model.OrderRecord, caps model.Capabilities) {
	for _, r := range records {
		tier := model.TierStandard

		if caps.HasProduct && containsAny(r.ProductName, giftMarkers) {
			tier = model.TierPremium
		}
		if tier != model.TierPremium && caps.HasOption && containsAny(r.Option, giftMarkers) {
			tier = model.TierPremium
		}
		if tier != model.TierPremium && caps.HasVariety && caps.HasFruitSize {
			if r.Variety == "감귤" && r.FruitSize == "로얄과" {
				tier = model.TierPremium
			} else if premiumVarieties[r.Variety] && premiumSizes[r.FruitSize] {
				tier = model.TierPremium
			}
		}

		r.PremiumTier = tier
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
