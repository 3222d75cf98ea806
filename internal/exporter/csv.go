// Package exporter 把规范化数据集输出给外部协作方：
// Looker 口径的 CSV（UTF-8 BOM，Excel 可直接打开非拉丁文本）与 Excel 汇总报告。
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// csvColumns 导出列顺序：原始列 + 派生列 + 分类列，顺序固定保证幂等
var csvColumns = []string{
	model.ColUID,
	model.ColSeller,
	model.ColProduct,
	model.ColOption,
	model.ColRegion,
	model.ColPurpose,
	model.ColVariety,
	model.ColFruitSize,
	model.ColWeightClass,
	model.ColEventFlag,
	model.ColOrderedQty,
	model.ColCancelledQty,
	model.ColNetQty,
	model.ColPayment,
	model.ColCancelAmount,
	model.ColPaid,
	model.ColSalePrice,
	model.ColSupplyPrice,
	model.ColRepurchase,
	model.ColOrderDate,
	model.ColShipPrepDate,
	model.ColDepositDate,
	model.ColNetProfit,
	model.ColRegionGroup,
	model.ColYearMonth,
	model.ColIsPremium,
	model.ColSellerGrade,
	model.ColSellerType,
}

// WriteCSV 导出有效销售子集为 CSV
//
// 带 UTF-8 BOM（Excel 识别韩文需要）；缺失数值与零值日期输出空串。
func WriteCSV(w io.Writer, ds *model.Dataset) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("写入 BOM 失败: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}

	row := make([]string, len(csvColumns))
	for _, r := range ds.Valid {
		fillCSVRow(row, r)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", r.RowNo, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func fillCSVRow(row []string, r *model.OrderRecord) {
	values := []string{
		r.UID,
		r.SellerName,
		r.ProductName,
		r.Option,
		r.Region,
		r.Purpose,
		r.Variety,
		r.FruitSize,
		r.WeightClass,
		r.EventFlag,
		formatNum(r.OrderedQty),
		formatNum(r.CancelledQty),
		formatNum(r.NetQty),
		formatNum(r.PaymentAmount),
		formatNum(r.CancelAmount),
		formatNum(r.PaidAmount),
		formatNum(r.UnitSalePrice),
		formatNum(r.UnitSupplyPrice),
		formatNum(r.RepurchaseCount),
		formatDate(r.OrderDate),
		formatDate(r.ShipPrepDate),
		formatDate(r.DepositDate),
		formatNum(r.NetProfit),
		r.RegionGroup,
		r.YearMonth,
		r.PremiumTier,
		r.SellerGrade,
		r.SellerType,
	}
	copy(row, values)
}

func formatNum(v float64) string {
	if model.IsMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
