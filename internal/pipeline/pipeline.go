// Package pipeline 串联记录规范化与规则分类的全流程：
// 原始表 → 字段定型 → 派生字段 → 有效性过滤 → 分类规则引擎。
// 整个流程纯函数、幂等，同一输入重复执行结果逐字节一致。
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/classifier"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/parser"
)

// Options 流程参数
type Options struct {
	// CapitalMarker 首都地区标记子串，空值取默认 "서울"
	CapitalMarker string
	// SourceID 输入来源标识（文件名等），用作缓存键的一部分
	SourceID string
}

// Run 对一张原始表执行完整流程，产出只读数据集
//
// 列整体缺失只降级对应派生/分类特性并记入 Warnings，绝不失败；
// 返回错误仅发生在表本身不可用时。
func Run(table *parser.RawTable, opts Options) (*model.Dataset, error) {
	if table == nil || len(table.Header) == 0 {
		return nil, fmt.Errorf("输入表不可用")
	}

	marker := opts.CapitalMarker
	if marker == "" {
		marker = model.RegionSeoul
	}

	records, caps := parser.BuildRecords(table)
	deriveFields(records, caps, marker)

	valid := FilterValid(records)
	grades := classifier.Apply(valid, caps)

	ds := &model.Dataset{
		ID:        uuid.New().String(),
		SourceID:  opts.SourceID,
		LoadedAt:  time.Now(),
		Records:   records,
		Valid:     valid,
		Grades:    grades,
		Caps:      caps,
		TotalRows: len(records),
		ValidRows: len(valid),
	}
	ds.Warnings = collectWarnings(caps)
	return ds, nil
}

// collectWarnings 把能力缺口转成可见的降级警告
func collectWarnings(caps model.Capabilities) []string {
	var warns []string
	if !caps.HasNetQty {
		warns = append(warns, "缺少 주문-취소 수량 列：有效销售子集为空，全部分析降级")
	}
	if !caps.HasProfitInputs() {
		warns = append(warns, "净利润三要素列不全：NetProfit 恒为 0")
	}
	if !caps.HasRegion {
		warns = append(warns, "缺少 광역지역 列：地区分组与区域卖家分类不可用")
	}
	if !caps.HasOrderDate {
		warns = append(warns, "缺少 주문일 列：月度生命周期分析不可用")
	}
	if !caps.HasSeller {
		warns = append(warns, "缺少 셀러명 列：卖家分级/类型/复购分析不可用")
	}
	if !caps.HasUID {
		warns = append(warns, "缺少 UID 列：复购率分析不可用")
	}
	return warns
}
