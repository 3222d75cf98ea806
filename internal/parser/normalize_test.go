package parser

import (
	"strings"
	"testing"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// TestParseNumeric 测试数值单元格定型
func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		missing bool
	}{
		{"12345", 12345, false},
		{"12,345", 12345, false},
		{"1,234,567.5", 1234567.5, false},
		{" 42 ", 42, false},
		{"-3", -3, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12개", 0, true},
	}
	for _, c := range cases {
		got := ParseNumeric(c.in)
		if c.missing {
			if !model.IsMissing(got) {
				t.Errorf("ParseNumeric(%q) = %v, want missing", c.in, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("ParseNumeric(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestParseDate 测试宽松日期解析
func TestParseDate(t *testing.T) {
	if got := ParseDate("2024-03-15"); got.IsZero() {
		t.Error("ParseDate(2024-03-15) should parse")
	}
	if got := ParseDate("2024-03-15 10:30:00"); got.IsZero() || got.Hour() != 10 {
		t.Errorf("ParseDate datetime = %v, want hour 10", got)
	}
	if got := ParseDate("2024/03/15"); got.IsZero() {
		t.Error("ParseDate(2024/03/15) should parse")
	}
	if got := ParseDate("not a date"); !got.IsZero() {
		t.Errorf("ParseDate(not a date) = %v, want zero", got)
	}
	if got := ParseDate(""); !got.IsZero() {
		t.Errorf("ParseDate(empty) = %v, want zero", got)
	}
}

// TestBuildRecords 测试整表定型与能力标记
func TestBuildRecords(t *testing.T) {
	table := &RawTable{
		Header: []string{model.ColUID, model.ColSeller, model.ColNetQty, model.ColPayment, model.ColOrderDate},
		Rows: [][]string{
			{"u1", "제주농장", "2", "30,000", "2024-01-05"},
			{"u2", "한라상회", "bad", "25000", "2024-02-10"},
			{"u3", "제주농장", "1", "", "잘못된날짜"},
		},
	}

	records, caps := BuildRecords(table)
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if !caps.HasUID || !caps.HasSeller || !caps.HasNetQty || !caps.HasPayment || !caps.HasOrderDate {
		t.Errorf("caps missing expected columns: %+v", caps)
	}
	if caps.HasRegion || caps.HasProfitInputs() {
		t.Errorf("caps should not report absent columns: %+v", caps)
	}

	if records[0].PaymentAmount != 30000 {
		t.Errorf("row1 payment = %v, want 30000", records[0].PaymentAmount)
	}
	// 坏单元格只使该格缺失，不影响整行
	if !model.IsMissing(records[1].NetQty) {
		t.Errorf("row2 netQty = %v, want missing", records[1].NetQty)
	}
	if records[1].PaymentAmount != 25000 {
		t.Errorf("row2 payment = %v, want 25000", records[1].PaymentAmount)
	}
	if !model.IsMissing(records[2].PaymentAmount) {
		t.Errorf("row3 payment = %v, want missing", records[2].PaymentAmount)
	}
	if !records[2].OrderDate.IsZero() {
		t.Errorf("row3 orderDate = %v, want zero", records[2].OrderDate)
	}
	// 缺失列整体跳过
	if records[0].Region != "" || !model.IsMissing(records[0].UnitSalePrice) {
		t.Error("absent columns should yield empty/missing values")
	}
}

// TestLoadCSVWithBOM 测试带 BOM 与不等长行的 CSV
func TestLoadCSVWithBOM(t *testing.T) {
	raw := "\xEF\xBB\xBF" + model.ColSeller + "," + model.ColNetQty + "\n셀러A,3\n셀러B\n"
	table, err := LoadCSV(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if table.Header[0] != model.ColSeller {
		t.Errorf("header[0] = %q, BOM not stripped", table.Header[0])
	}
	if len(table.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(table.Rows))
	}
}

// TestLoadCSVEmpty 空输入应报错而非产出半成品
func TestLoadCSVEmpty(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("")); err == nil {
		t.Error("LoadCSV(empty) should fail")
	}
}

// TestNormalizeHeader 表头规范化保留列名内部空格
func TestNormalizeHeader(t *testing.T) {
	got := normalizeHeader([]string{" 과수 크기 ", "셀러명\n", "a\t\tb"})
	if got[0] != "과수 크기" {
		t.Errorf("header[0] = %q, want 과수 크기", got[0])
	}
	if got[1] != "셀러명" {
		t.Errorf("header[1] = %q, want 셀러명", got[1])
	}
	if got[2] != "a b" {
		t.Errorf("header[2] = %q, want a b", got[2])
	}
}
