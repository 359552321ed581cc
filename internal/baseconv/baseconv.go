// Package baseconv formats signed integers in an arbitrary base using the
// same iterative division-and-remainder approach (and the same base
// range, 2 through 32) as the solver's original itoa/reverse pair.
package baseconv

// FormatInt renders value in the given base (2-32), predecing the
// digits with a minus sign for negative values when base is 10 -- the
// same convention original_source's itoa uses, where any other base is
// always treated as unsigned magnitude.
func FormatInt(value, base int) string {
	if base < 2 || base > 32 {
		return ""
	}

	n := value
	if n < 0 {
		n = -n
	}

	var digits []byte
	for n != 0 {
		r := n % base
		if r >= 10 {
			digits = append(digits, byte(65+(r-10)))
		} else {
			digits = append(digits, byte(48+r))
		}
		n /= base
	}
	if len(digits) == 0 {
		digits = append(digits, '0')
	}
	if value < 0 && base == 10 {
		digits = append(digits, '-')
	}

	reverse(digits)
	return string(digits)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
