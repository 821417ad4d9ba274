package utils

import "strconv"

// FormatPrice 奈拉金额加千分位，如 180000 -> ₦180,000
func FormatPrice(price int) string {
	neg := price < 0
	if neg {
		price = -price
	}
	s := strconv.Itoa(price)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-₦" + string(out)
	}
	return "₦" + string(out)
}
