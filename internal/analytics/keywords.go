package analytics

import (
	"sort"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// KeywordCount 关键词词频
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TopKeywords 统计商品名关键词词频，返回前 top 个（top<=0 返回全部）
func TopKeywords(records []*model.OrderRecord, top int) []KeywordCount {
	counts := make(map[string]int)
	for _, r := range records {
		for _, kw := range r.Keywords {
			counts[kw]++
		}
	}

	rows := make([]KeywordCount, 0, len(counts))
	for kw, n := range counts {
		rows = append(rows, KeywordCount{Keyword: kw, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Keyword < rows[j].Keyword
	})

	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}
	return rows
}
