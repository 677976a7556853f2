package pricing

import (
	"regexp"
	"slices"

	"github.com/shopspring/decimal"
)

const CouponDiscountPercent = 50

const (
	MsgCouponFormat  = "Invalid coupon format. Use 3 lowercase letters + 3 digits (e.g., sis123)"
	MsgCouponUsed    = "Coupon is already used"
	MsgCouponUnknown = "Invalid coupon code"
	MsgCouponApplied = "Coupon applied! 50% discount"
)

var couponFormat = regexp.MustCompile(`^[a-z]{3}\d{3}$`)

// validCoupons is the promotional allow-list. It contains repeats.
var validCoupons = []string{
	"sir123", "giu143", "abc456", "mag101", "pic555",
	"xyz789", "def234", "ghi567", "jkl890", "mno123",
	"pqr456", "stu789", "vwx012", "yza345", "bcd678",
	"efg901", "hij234", "klm567", "nop890", "qrs123",
	"tuv456", "wxy789", "zab012", "cde345", "fgh678",
	"ijk901", "lmn234", "opq567", "rst890", "uvw123",
	"xya456", "zbc789", "def012", "ghi345", "jkl678",
	"mno901", "pqr234", "stu567", "vwx890", "yza123",
	"bcd456", "efg789", "hij012", "klm345", "nop678",
	"qrs901", "tuv234", "wxy567", "zab890", "cde123",
}

type CouponResult struct {
	Code     string `json:"code"`
	Valid    bool   `json:"isValid"`
	Discount int    `json:"discountPercentage,omitempty"`
	Message  string `json:"message"`
}

func ValidCouponFormat(code string) bool {
	return couponFormat.MatchString(code)
}

// ValidateCoupon checks format, then the caller's used list, then the
// allow-list. used is whatever the current checkout session has applied.
func ValidateCoupon(code string, used []string) CouponResult {
	if !ValidCouponFormat(code) {
		return CouponResult{Code: code, Message: MsgCouponFormat}
	}

	if slices.Contains(used, code) {
		return CouponResult{Code: code, Message: MsgCouponUsed}
	}

	if !slices.Contains(validCoupons, code) {
		return CouponResult{Code: code, Message: MsgCouponUnknown}
	}

	return CouponResult{
		Code:     code,
		Valid:    true,
		Discount: CouponDiscountPercent,
		Message:  MsgCouponApplied,
	}
}

// CalculateDiscount returns total*pct/100 rounded half away from zero.
func CalculateDiscount(total, pct int) int {
	return int(decimal.NewFromInt(int64(total)).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart())
}
