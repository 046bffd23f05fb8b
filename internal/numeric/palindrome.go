package numeric

import "strconv"

// IsPalindrome reports whether the canonical decimal form of x reads the same
// in both directions. The leading minus sign of a negative number is part of
// the compared string, so no negative number is a palindrome.
func IsPalindrome(x int64) bool {
	digits := strconv.FormatInt(x, 10)
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		if digits[i] != digits[j] {
			return false
		}
	}
	return true
}
