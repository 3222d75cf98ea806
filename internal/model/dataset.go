package model

import "time"

// Dataset 一次装载+分类后的完整结果
//
// Records 为全部规范化记录，Valid 为有效销售子集（주문-취소 수량 > 0）的视图；
// 查询层只读，二者在分类完成后不再修改。
type Dataset struct {
	ID       string    `json:"id"`
	SourceID string    `json:"sourceId"`
	LoadedAt time.Time `json:"loadedAt"`

	Records []*OrderRecord `json:"-"`
	Valid   []*OrderRecord `json:"-"`

	// Grades 分类时算出的卖家分级表，报表直接复用，不再重算
	Grades []SellerGradeRow `json:"-"`

	Caps     Capabilities `json:"caps"`
	Warnings []string     `json:"warnings,omitempty"`

	TotalRows int `json:"totalRows"`
	ValidRows int `json:"validRows"`
}

// SellerGradeRow 卖家分级结果（按营收排名）
type SellerGradeRow struct {
	Seller     string  `json:"seller"`
	Revenue    float64 `json:"revenue"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
	Grade      string  `json:"grade"`
}

// SellerRetentionRow 卖家复购率结果
type SellerRetentionRow struct {
	Seller       string  `json:"seller"`
	Buyers       int     `json:"buyers"`
	Repurchasers int     `json:"repurchasers"`
	Rate         float64 `json:"rate"`
}

// LifecycleRow 按月卖家生命周期统计
type LifecycleRow struct {
	Month    string `json:"month"`
	Active   int    `json:"active"`
	New      int    `json:"new"`
	Churned  int    `json:"churned"`
	Retained int    `json:"retained"`
}
