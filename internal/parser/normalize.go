package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// 宽松日期解析布局，按命中率排序
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006.01.02",
	"01/02/2006",
	"2006-1-2",
}

// ParseNumeric 数值单元格定型：去千分位逗号后解析，失败返回缺失
func ParseNumeric(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return model.Missing()
	}
	cell = strings.ReplaceAll(cell, ",", "")
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return model.Missing()
	}
	return v
}

// ParseDate 日期单元格定型：多布局尝试，失败返回零值
func ParseDate(cell string) time.Time {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DetectCapabilities 根据表头计算列能力标记
func DetectCapabilities(t *RawTable) model.Capabilities {
	idx := t.ColumnIndex()
	has := func(col string) bool {
		_, ok := idx[col]
		return ok
	}
	return model.Capabilities{
		HasUID:         has(model.ColUID),
		HasSeller:      has(model.ColSeller),
		HasProduct:     has(model.ColProduct),
		HasOption:      has(model.ColOption),
		HasRegion:      has(model.ColRegion),
		HasPurpose:     has(model.ColPurpose),
		HasVariety:     has(model.ColVariety),
		HasFruitSize:   has(model.ColFruitSize),
		HasWeightClass: has(model.ColWeightClass),
		HasEventFlag:   has(model.ColEventFlag),
		HasNetQty:      has(model.ColNetQty),
		HasPayment:     has(model.ColPayment),
		HasPaid:        has(model.ColPaid),
		HasSalePrice:   has(model.ColSalePrice),
		HasSupply:      has(model.ColSupplyPrice),
		HasOrderDate:   has(model.ColOrderDate),
	}
}

// BuildRecords 把原始表逐行定型为规范化订单记录
//
// 单元格解析失败只使该格缺失，绝不中断整表；缺失列整体跳过。
func BuildRecords(t *RawTable) ([]*model.OrderRecord, model.Capabilities) {
	idx := t.ColumnIndex()
	caps := DetectCapabilities(t)

	records := make([]*model.OrderRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		getText := func(col string) string {
			if j, ok := idx[col]; ok && j < len(row) {
				return strings.TrimSpace(row[j])
			}
			return ""
		}
		getNum := func(col string) float64 {
			if j, ok := idx[col]; ok && j < len(row) {
				return ParseNumeric(row[j])
			}
			return model.Missing()
		}
		getDate := func(col string) time.Time {
			if j, ok := idx[col]; ok && j < len(row) {
				return ParseDate(row[j])
			}
			return time.Time{}
		}

		records = append(records, &model.OrderRecord{
			RowNo: i + 2, // 数据行从表头后开始

			UID:         getText(model.ColUID),
			SellerName:  getText(model.ColSeller),
			ProductName: getText(model.ColProduct),
			Option:      getText(model.ColOption),
			Region:      getText(model.ColRegion),
			Purpose:     getText(model.ColPurpose),
			Variety:     getText(model.ColVariety),
			FruitSize:   getText(model.ColFruitSize),
			WeightClass: getText(model.ColWeightClass),
			EventFlag:   getText(model.ColEventFlag),

			OrderedQty:      getNum(model.ColOrderedQty),
			CancelledQty:    getNum(model.ColCancelledQty),
			NetQty:          getNum(model.ColNetQty),
			PaymentAmount:   getNum(model.ColPayment),
			CancelAmount:    getNum(model.ColCancelAmount),
			PaidAmount:      getNum(model.ColPaid),
			UnitSalePrice:   getNum(model.ColSalePrice),
			UnitSupplyPrice: getNum(model.ColSupplyPrice),
			RepurchaseCount: getNum(model.ColRepurchase),

			OrderDate:    getDate(model.ColOrderDate),
			ShipPrepDate: getDate(model.ColShipPrepDate),
			DepositDate:  getDate(model.ColDepositDate),
		})
	}

	return records, caps
}
