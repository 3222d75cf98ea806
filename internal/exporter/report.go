package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/analytics"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/query"
)

// ReportOptions 汇总报告参数
type ReportOptions struct {
	RetentionMinBuyers int
	TopN               int
}

// BuildReport 生成 Excel 汇总报告
//
// 四张工作表：概览 KPI、卖家分级、月度生命周期、复购率排名，
// 外加무게 구분 × RegionGroup 交叉表（列存在时）。
func BuildReport(ds *model.Dataset, opts ReportOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeOverviewSheet(f, ds, opts.TopN); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeGradeSheet(f, ds); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeLifecycleSheet(f, ds); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeRetentionSheet(f, ds, opts.RetentionMinBuyers); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeCrossTabSheet(f, ds); err != nil {
		_ = f.Close()
		return nil, err
	}

	// 删除默认 Sheet1，激活概览
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)
	return f, nil
}

func writeOverviewSheet(f *excelize.File, ds *model.Dataset, topN int) error {
	const sheet = "概览"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}

	s := analytics.Summarize(ds.Valid)
	rows := [][]interface{}{
		{"指标", "数值"},
		{"总记录数", ds.TotalRows},
		{"有效销售记录数", ds.ValidRows},
		{"总营收（실결제 금액）", s.TotalRevenue},
		{"总销量（주문-취소 수량）", s.TotalUnits},
		{"总净利润", s.TotalProfit},
		{"平均单价（판매단가）", s.AvgUnitPrice},
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}

	// 营收 Top 卖家/商品
	start := len(rows) + 2
	for _, dim := range []string{model.ColSeller, model.ColProduct} {
		grouped, err := query.GroupSum(ds.Valid, dim, model.ColPaid)
		if err != nil {
			continue
		}
		top := query.TopN(grouped, topN)
		header := [][]interface{}{{fmt.Sprintf("营收 Top %d（%s）", topN, dim), ""}}
		if err := writeRows(f, sheet, start, header); err != nil {
			return err
		}
		start++
		for _, row := range top {
			if err := writeRows(f, sheet, start, [][]interface{}{{row.Key, row.Value}}); err != nil {
				return err
			}
			start++
		}
		start++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	return nil
}

func writeGradeSheet(f *excelize.File, ds *model.Dataset) error {
	const sheet = "卖家分级"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}

	rows := [][]interface{}{{"셀러명", "总营收（결제금액）", "名次", "百分位", "等级"}}
	for _, g := range ds.Grades {
		rows = append(rows, []interface{}{g.Seller, g.Revenue, g.Rank, g.Percentile, g.Grade})
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	return nil
}

func writeLifecycleSheet(f *excelize.File, ds *model.Dataset) error {
	const sheet = "生命周期"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}

	rows := [][]interface{}{{"月份", "活跃", "新增", "流失", "留存"}}
	for _, l := range analytics.Lifecycle(ds.Valid) {
		rows = append(rows, []interface{}{l.Month, l.Active, l.New, l.Churned, l.Retained})
	}
	return writeRows(f, sheet, 1, rows)
}

func writeRetentionSheet(f *excelize.File, ds *model.Dataset, minBuyers int) error {
	const sheet = "复购率"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}

	rows := [][]interface{}{{"셀러명", "买家数", "复购买家数", "复购率(%)"}}
	for _, r := range analytics.Retention(ds.Valid, ds.Caps, minBuyers) {
		rows = append(rows, []interface{}{r.Seller, r.Buyers, r.Repurchasers, r.Rate})
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	return nil
}

func writeCrossTabSheet(f *excelize.File, ds *model.Dataset) error {
	if !ds.Caps.HasWeightClass || !ds.Caps.HasRegion {
		return nil
	}

	const sheet = "地区偏好"
	ct, err := query.CrossTabulate(ds.Valid, model.ColWeightClass, model.ColRegionGroup)
	if err != nil {
		return nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}

	header := make([]interface{}, 0, len(ct.ColKeys)+1)
	header = append(header, model.ColWeightClass)
	for _, ck := range ct.ColKeys {
		header = append(header, ck+"(%)")
	}
	rows := [][]interface{}{header}
	for i, rk := range ct.RowKeys {
		row := make([]interface{}, 0, len(ct.ColKeys)+1)
		row = append(row, rk)
		for j := range ct.ColKeys {
			row = append(row, ct.Values[i][j])
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheet, 1, rows)
}

// writeRows 从 startRow 起逐行写入
func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("写入 %s!%s 失败: %w", sheet, cell, err)
		}
	}
	return nil
}
