package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawTable 原始表：表头 + 未定型的字符串单元格
type RawTable struct {
	Header []string
	Rows   [][]string
}

// LoadCSV 读取分隔表（UTF-8，容忍 BOM 与不等长行）
func LoadCSV(r io.Reader) (*RawTable, error) {
	br := bufio.NewReader(r)

	// 跳过 UTF-8 BOM（Excel 另存的 CSV 常见）
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取 CSV 失败: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("空表：缺少表头行")
	}

	return &RawTable{
		Header: normalizeHeader(rows[0]),
		Rows:   rows[1:],
	}, nil
}

// LoadExcel 读取 Excel 工作簿的第一个工作表
func LoadExcel(r io.Reader) (*RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开 Excel 失败: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("工作簿无工作表")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("空表：缺少表头行")
	}

	return &RawTable{
		Header: normalizeHeader(rows[0]),
		Rows:   rows[1:],
	}, nil
}

// Load 按文件名后缀选择装载方式
func Load(filename string, r io.Reader) (*RawTable, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xlsm"):
		return LoadExcel(r)
	default:
		return LoadCSV(r)
	}
}

// ColumnIndex 表头到列下标的映射；重复列名以首次出现为准
func (t *RawTable) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, col := range t.Header {
		if col == "" {
			continue
		}
		if _, ok := idx[col]; !ok {
			idx[col] = i
		}
	}
	return idx
}

// normalizeHeader 规范化表头：去首尾空白、去换行制表符、压缩连续空格
//
// 注意不能删除列名内部的单个空格（如 "과수 크기"）。
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		col = strings.ReplaceAll(col, "\n", "")
		col = strings.ReplaceAll(col, "\r", "")
		col = strings.ReplaceAll(col, "\t", " ")
		col = strings.Join(strings.Fields(col), " ")
		out[i] = col
	}
	return out
}
