package model

import (
	"encoding/json"
	"math"
	"time"
)

// 分类取值（与数据源的韩文标签保持一致）
const (
	TierPremium  = "프리미엄"
	TierStandard = "일반"

	SellerRegional = "지역셀러"
	SellerGeneral  = "일반 셀러"

	RegionSeoul    = "서울"
	RegionNonSeoul = "비서울"
)

// Missing 缺失数值哨兵（对齐 pandas 的 NaN 语义）
func Missing() float64 {
	return math.NaN()
}

// IsMissing 判断数值是否缺失
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// OrderRecord 规范化后的单条订单记录
//
// 数值字段缺失用 NaN 表示，日期字段缺失用零值表示；
// 分类列由规则引擎写入，只写一次。
type OrderRecord struct {
	RowNo int `json:"rowNo"`

	UID         string `json:"uid"`
	SellerName  string `json:"sellerName"`
	ProductName string `json:"productName"`
	Option      string `json:"option"`
	Region      string `json:"region"`
	Purpose     string `json:"purpose"`
	Variety     string `json:"variety"`
	FruitSize   string `json:"fruitSize"`
	WeightClass string `json:"weightClass"`
	EventFlag   string `json:"eventFlag"`

	OrderedQty      float64 `json:"orderedQty"`
	CancelledQty    float64 `json:"cancelledQty"`
	NetQty          float64 `json:"netQty"`
	PaymentAmount   float64 `json:"paymentAmount"`
	CancelAmount    float64 `json:"cancelAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	UnitSalePrice   float64 `json:"unitSalePrice"`
	UnitSupplyPrice float64 `json:"unitSupplyPrice"`
	RepurchaseCount float64 `json:"repurchaseCount"`

	OrderDate    time.Time `json:"orderDate"`
	ShipPrepDate time.Time `json:"shipPrepDate"`
	DepositDate  time.Time `json:"depositDate"`

	// 派生字段
	NetProfit   float64  `json:"netProfit"`
	RegionGroup string   `json:"regionGroup"`
	YearMonth   string   `json:"yearMonth"`
	Keywords    []string `json:"keywords,omitempty"`

	// 分类字段
	PremiumTier string `json:"premiumTier"`
	SellerGrade string `json:"sellerGrade"`
	SellerType  string `json:"sellerType"`
}

// MarshalJSON 缺失数值与零值日期输出 null（NaN 不是合法 JSON 字面量）
func (r *OrderRecord) MarshalJSON() ([]byte, error) {
	type jsonOrderRecord struct {
		RowNo int `json:"rowNo"`

		UID         string `json:"uid"`
		SellerName  string `json:"sellerName"`
		ProductName string `json:"productName"`
		Option      string `json:"option"`
		Region      string `json:"region"`
		Purpose     string `json:"purpose"`
		Variety     string `json:"variety"`
		FruitSize   string `json:"fruitSize"`
		WeightClass string `json:"weightClass"`
		EventFlag   string `json:"eventFlag"`

		OrderedQty      *float64 `json:"orderedQty"`
		CancelledQty    *float64 `json:"cancelledQty"`
		NetQty          *float64 `json:"netQty"`
		PaymentAmount   *float64 `json:"paymentAmount"`
		CancelAmount    *float64 `json:"cancelAmount"`
		PaidAmount      *float64 `json:"paidAmount"`
		UnitSalePrice   *float64 `json:"unitSalePrice"`
		UnitSupplyPrice *float64 `json:"unitSupplyPrice"`
		RepurchaseCount *float64 `json:"repurchaseCount"`

		OrderDate    *time.Time `json:"orderDate"`
		ShipPrepDate *time.Time `json:"shipPrepDate"`
		DepositDate  *time.Time `json:"depositDate"`

		NetProfit   float64  `json:"netProfit"`
		RegionGroup string   `json:"regionGroup"`
		YearMonth   string   `json:"yearMonth"`
		Keywords    []string `json:"keywords,omitempty"`

		PremiumTier string `json:"premiumTier"`
		SellerGrade string `json:"sellerGrade"`
		SellerType  string `json:"sellerType"`
	}

	return json.Marshal(jsonOrderRecord{
		RowNo: r.RowNo,

		UID:         r.UID,
		SellerName:  r.SellerName,
		ProductName: r.ProductName,
		Option:      r.Option,
		Region:      r.Region,
		Purpose:     r.Purpose,
		Variety:     r.Variety,
		FruitSize:   r.FruitSize,
		WeightClass: r.WeightClass,
		EventFlag:   r.EventFlag,

		OrderedQty:      numOrNull(r.OrderedQty),
		CancelledQty:    numOrNull(r.CancelledQty),
		NetQty:          numOrNull(r.NetQty),
		PaymentAmount:   numOrNull(r.PaymentAmount),
		CancelAmount:    numOrNull(r.CancelAmount),
		PaidAmount:      numOrNull(r.PaidAmount),
		UnitSalePrice:   numOrNull(r.UnitSalePrice),
		UnitSupplyPrice: numOrNull(r.UnitSupplyPrice),
		RepurchaseCount: numOrNull(r.RepurchaseCount),

		OrderDate:    dateOrNull(r.OrderDate),
		ShipPrepDate: dateOrNull(r.ShipPrepDate),
		DepositDate:  dateOrNull(r.DepositDate),

		NetProfit:   r.NetProfit,
		RegionGroup: r.RegionGroup,
		YearMonth:   r.YearMonth,
		Keywords:    r.Keywords,

		PremiumTier: r.PremiumTier,
		SellerGrade: r.SellerGrade,
		SellerType:  r.SellerType,
	})
}

func numOrNull(v float64) *float64 {
	if IsMissing(v) {
		return nil
	}
	return &v
}

func dateOrNull(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Capabilities 列能力标记
//
// 规范化完成后计算一次，各组件据此降级，替代逐行的"列是否存在"判断。
type Capabilities struct {
	HasUID         bool `json:"hasUID"`
	HasSeller      bool `json:"hasSeller"`
	HasProduct     bool `json:"hasProduct"`
	HasOption      bool `json:"hasOption"`
	HasRegion      bool `json:"hasRegion"`
	HasPurpose     bool `json:"hasPurpose"`
	HasVariety     bool `json:"hasVariety"`
	HasFruitSize   bool `json:"hasFruitSize"`
	HasWeightClass bool `json:"hasWeightClass"`
	HasEventFlag   bool `json:"hasEventFlag"`

	HasNetQty    bool `json:"hasNetQty"`
	HasPayment   bool `json:"hasPayment"`
	HasPaid      bool `json:"hasPaid"`
	HasSalePrice bool `json:"hasSalePrice"`
	HasSupply    bool `json:"hasSupply"`
	HasOrderDate bool `json:"hasOrderDate"`
}

// HasProfitInputs 净利润三要素列是否齐备
func (c Capabilities) HasProfitInputs() bool {
	return c.HasSalePrice && c.HasSupply && c.HasNetQty
}
