// Package classifier 实现三套互相独立的分类规则：
// 商品高端分类、卖家营收分级、卖家区域类型。
// 三套规则均在有效销售子集上求值，顺序无关，输出写回记录后即只读。
package classifier

import "github.com/gilsanglab/eda2-marketing-dashboard/internal/model"

// Apply 对有效销售子集执行全部分类规则，返回卖家分级表供报表复用
func Apply(records []*model.OrderRecord, caps model.Capabilities) []model.SellerGradeRow {
	classifyPremium(records, caps)
	grades := classifyGrades(records, caps)
	classifySellerType(records, caps)
	return grades
}
