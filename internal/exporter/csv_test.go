package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/parser"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/pipeline"
)

func exportDataset(t *testing.T) *model.Dataset {
	t.Helper()
	table := &parser.RawTable{
		Header: []string{
			model.ColUID, model.ColSeller, model.ColProduct, model.ColRegion,
			model.ColNetQty, model.ColPayment, model.ColPaid,
			model.ColSalePrice, model.ColSupplyPrice, model.ColOrderDate,
		},
		Rows: [][]string{
			{"u1", "제주농장", "감귤 선물세트", "서울특별시", "2", "30,000", "30000", "15000", "10000", "2024-01-05"},
			{"u2", "한라상회", "한라봉", "경기도", "1", "25000", "25000", "25000", "", "2024-02-10"},
			{"u3", "제주농장", "천혜향", "제주", "0", "20000", "0", "20000", "15000", "2024-02-11"},
		},
	}
	ds, err := pipeline.Run(table, pipeline.Options{})
	if err != nil {
		t.Fatalf("pipeline.Run failed: %v", err)
	}
	return ds
}

// TestWriteCSV 导出内容：BOM、表头、有效子集、缺失格为空串
func TestWriteCSV(t *testing.T) {
	ds := exportDataset(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ds); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\xEF\xBB\xBF") {
		t.Error("output should start with UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 表头 + 2 条有效记录（u3 的 netQty=0 被排除）
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.Contains(lines[0], model.ColIsPremium) {
		t.Error("header should contain classification columns")
	}
	if !strings.Contains(out, "제주농장") || strings.Count(out, "u3") != 0 {
		t.Error("valid subset rows mismatch")
	}

	// u2 缺공급단가：该格为空且 NetProfit 为 0
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "u2") && !strings.Contains(line, ",,") {
			t.Error("missing numeric cell should serialize as empty string")
		}
	}
}

// TestWriteCSVIdempotent 同一输入两次导出逐字节一致
func TestWriteCSVIdempotent(t *testing.T) {
	ds := exportDataset(t)

	var buf1, buf2 bytes.Buffer
	if err := WriteCSV(&buf1, ds); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if err := WriteCSV(&buf2, ds); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("two exports of the same dataset differ")
	}
}

// TestBuildReport 汇总报告包含全部固定工作表
func TestBuildReport(t *testing.T) {
	ds := exportDataset(t)

	f, err := BuildReport(ds, ReportOptions{RetentionMinBuyers: 1, TopN: 5})
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"概览", "卖家分级", "生命周期", "复购率"} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("sheet %s missing, got %v", want, sheets)
		}
	}

	// 概览第一格为表头
	if v, err := f.GetCellValue("概览", "A1"); err != nil || v != "指标" {
		t.Errorf("概览!A1 = %q (%v), want 指标", v, err)
	}
}
