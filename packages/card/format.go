package card

import "strings"

// Format groups a number's digits for display: Amex as 4-6-5, every other
// network as groups of four. Non-digit input characters are stripped first.
// Numbers whose length does not fit the grouping keep a short final group.
func Format(number string, t Type) string {
	digits := stripNonDigits(number)
	if digits == "" {
		return ""
	}
	return strings.Join(splitGroups(digits, groupSizes(t)), " ")
}

// Mask replaces all but the last keep digits with '*' and then applies the
// network grouping. keep values outside [0, len] are clamped.
func Mask(number string, t Type, keep int) string {
	digits := stripNonDigits(number)
	if digits == "" {
		return ""
	}
	if keep < 0 {
		keep = 0
	}
	if keep > len(digits) {
		keep = len(digits)
	}
	masked := strings.Repeat("*", len(digits)-keep) + digits[len(digits)-keep:]
	return strings.Join(splitGroups(masked, groupSizes(t)), " ")
}

func groupSizes(t Type) []int {
	if t == Amex {
		return []int{4, 6, 5}
	}
	return []int{4, 4, 4, 4}
}

// splitGroups slices s into the given group sizes, reusing the last size
// for any remainder so arbitrary lengths still format.
func splitGroups(s string, sizes []int) []string {
	var groups []string
	i, g := 0, 0
	for i < len(s) {
		size := sizes[len(sizes)-1]
		if g < len(sizes) {
			size = sizes[g]
		}
		end := i + size
		if end > len(s) {
			end = len(s)
		}
		groups = append(groups, s[i:end])
		i = end
		g++
	}
	return groups
}
