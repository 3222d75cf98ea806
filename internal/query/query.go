// Package query 提供无状态的探索查询原语：
// 分组求和、Top-N、列归一化交叉表、谓词过滤。
// 查询只读取已分类的数据集，不重算任何派生字段。
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// ErrUnknownDimension / ErrUnknownMeasure 非法查询参数，直接上抛调用方
var (
	ErrUnknownDimension = fmt.Errorf("未知的分组维度")
	ErrUnknownMeasure   = fmt.Errorf("未知的度量列")
)

// 可分组维度：原始分类列 + 派生/分类列
var dimensions = map[string]func(*model.OrderRecord) string{
	model.ColSeller:      func(r *model.OrderRecord) string { return r.SellerName },
	model.ColProduct:     func(r *model.OrderRecord) string { return r.ProductName },
	model.ColRegion:      func(r *model.OrderRecord) string { return r.Region },
	model.ColPurpose:     func(r *model.OrderRecord) string { return r.Purpose },
	model.ColVariety:     func(r *model.OrderRecord) string { return r.Variety },
	model.ColFruitSize:   func(r *model.OrderRecord) string { return r.FruitSize },
	model.ColWeightClass: func(r *model.OrderRecord) string { return r.WeightClass },
	model.ColEventFlag:   func(r *model.OrderRecord) string { return r.EventFlag },
	model.ColRegionGroup: func(r *model.OrderRecord) string { return r.RegionGroup },
	model.ColYearMonth:   func(r *model.OrderRecord) string { return r.YearMonth },
	model.ColIsPremium:   func(r *model.OrderRecord) string { return r.PremiumTier },
	model.ColSellerGrade: func(r *model.OrderRecord) string { return r.SellerGrade },
	model.ColSellerType:  func(r *model.OrderRecord) string { return r.SellerType },
}

// 可求和度量
var measures = map[string]func(*model.OrderRecord) float64{
	model.ColPayment:   func(r *model.OrderRecord) float64 { return r.PaymentAmount },
	model.ColPaid:      func(r *model.OrderRecord) float64 { return r.PaidAmount },
	model.ColNetQty:    func(r *model.OrderRecord) float64 { return r.NetQty },
	model.ColSalePrice: func(r *model.OrderRecord) float64 { return r.UnitSalePrice },
	model.ColNetProfit: func(r *model.OrderRecord) float64 { return r.NetProfit },
}

// GroupRow 分组求和结果行
type GroupRow struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// GroupSum 按维度对度量求和，降序返回；缺失格与空维度值不参与
func GroupSum(records []*model.OrderRecord, dimension, measure string) ([]GroupRow, error) {
	dim, ok := dimensions[dimension]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, dimension)
	}
	m, ok := measures[measure]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMeasure, measure)
	}

	sums := make(map[string]float64)
	for _, r := range records {
		key := dim(r)
		if key == "" {
			continue
		}
		v := m(r)
		if model.IsMissing(v) {
			continue
		}
		sums[key] += v
	}

	rows := make([]GroupRow, 0, len(sums))
	for k, v := range sums {
		rows = append(rows, GroupRow{Key: k, Value: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Key < rows[j].Key
	})
	return rows, nil
}

// TopN 截取前 n 行（n<=0 返回原切片）
func TopN(rows []GroupRow, n int) []GroupRow {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

// CrossTab 列归一化交叉表：每个列维度取值下，各行维度取值的记录数百分比
type CrossTab struct {
	RowDim  string      `json:"rowDim"`
	ColDim  string      `json:"colDim"`
	RowKeys []string    `json:"rowKeys"`
	ColKeys []string    `json:"colKeys"`
	// Values[i][j] 为 RowKeys[i] × ColKeys[j] 的百分比，每列合计 100
	Values [][]float64 `json:"values"`
}

// CrossTabulate 计算两个分类维度的列归一化交叉表
func CrossTabulate(records []*model.OrderRecord, rowDim, colDim string) (*CrossTab, error) {
	rowFn, ok := dimensions[rowDim]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, rowDim)
	}
	colFn, ok := dimensions[colDim]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, colDim)
	}

	counts := make(map[string]map[string]int)
	colTotals := make(map[string]int)
	for _, r := range records {
		rk, ck := rowFn(r), colFn(r)
		if rk == "" || ck == "" {
			continue
		}
		if counts[rk] == nil {
			counts[rk] = make(map[string]int)
		}
		counts[rk][ck]++
		colTotals[ck]++
	}

	ct := &CrossTab{RowDim: rowDim, ColDim: colDim}
	for rk := range counts {
		ct.RowKeys = append(ct.RowKeys, rk)
	}
	for ck := range colTotals {
		ct.ColKeys = append(ct.ColKeys, ck)
	}
	sort.Strings(ct.RowKeys)
	sort.Strings(ct.ColKeys)

	ct.Values = make([][]float64, len(ct.RowKeys))
	for i, rk := range ct.RowKeys {
		ct.Values[i] = make([]float64, len(ct.ColKeys))
		for j, ck := range ct.ColKeys {
			if total := colTotals[ck]; total > 0 {
				ct.Values[i][j] = float64(counts[rk][ck]) / float64(total) * 100
			}
		}
	}
	return ct, nil
}

// Predicates 下钻过滤谓词；零值字段不过滤
type Predicates struct {
	Region  string // 광역지역 精确匹配
	Seller  string // 셀러명 精确匹配
	Keyword string // 상품명 关键词包含（大小写不敏感）
}

// Filter 按谓词过滤记录，返回新切片，不修改输入
func Filter(records []*model.OrderRecord, p Predicates) []*model.OrderRecord {
	keyword := strings.ToLower(p.Keyword)
	out := make([]*model.OrderRecord, 0, len(records))
	for _, r := range records {
		if p.Region != "" && r.Region != p.Region {
			continue
		}
		if p.Seller != "" && r.SellerName != p.Seller {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(r.ProductName), keyword) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Dimensions 返回全部可分组维度名（排序后，供接口报参数错误时提示）
func Dimensions() []string {
	names := make([]string, 0, len(dimensions))
	for name := range dimensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Measures 返回全部可求和度量名
func Measures() []string {
	names := make([]string, 0, len(measures))
	for name := range measures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
