package utils

import "strings"

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// ToRoman formats a positive number as a roman numeral; anything else is "".
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	var roman strings.Builder
	for i, v := range romanValues {
		for num >= v {
			roman.WriteString(romanSymbols[i])
			num -= v
		}
	}
	return roman.String()
}
