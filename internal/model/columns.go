package model

// 原始表列名（韩文电商订单导出格式，保持与数据源一致）
const (
	ColUID         = "UID"
	ColSeller      = "셀러명"
	ColProduct     = "상품명"
	ColOption      = "고객선택옵션"
	ColRegion      = "광역지역"
	ColPurpose     = "목적"
	ColVariety     = "품종"
	ColFruitSize   = "과수 크기"
	ColWeightClass = "무게 구분"
	ColEventFlag   = "이벤트 여부"

	ColOrderedQty   = "주문수량"
	ColCancelledQty = "취소수량"
	ColNetQty       = "주문-취소 수량"
	ColPayment      = "결제금액"
	ColCancelAmount = "주문취소 금액"
	ColPaid         = "실결제 금액"
	ColSalePrice    = "판매단가"
	ColSupplyPrice  = "공급단가"
	ColRepurchase   = "재구매 횟수"

	ColOrderDate    = "주문일"
	ColShipPrepDate = "배송준비 처리일"
	ColDepositDate  = "입금일"
)

// 派生列与分类列列名（导出口径，与历史 CSV 结果保持兼容）
const (
	ColNetProfit   = "NetProfit"
	ColRegionGroup = "RegionGroup"
	ColYearMonth   = "YearMonth"
	ColIsPremium   = "is_premium"
	ColSellerGrade = "seller_grade"
	ColSellerType  = "seller_type"
)
