package employee

const (
	FiscalCountryBrazil   = "BR"
	FiscalCountryPortugal = "PT"
)

// ValidFiscalNumber validates value as the fiscal identifier of the given
// country.
func ValidFiscalNumber(country, value string) bool {
	switch country {
	case FiscalCountryBrazil:
		return ValidCPF(value)
	case FiscalCountryPortugal:
		return ValidNIF(value)
	default:
		return false
	}
}

// ValidCPF verifies the two mod-11 check digits of a Brazilian CPF.
func ValidCPF(value string) bool {
	digits, ok := digitsOf(value, 11)
	if !ok {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	first := 11 - sum%11
	if first >= 10 {
		first = 0
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	second := 11 - sum%11
	if second >= 10 {
		second = 0
	}

	return first == digits[9] && second == digits[10]
}

// ValidNIF verifies the mod-11 check digit of a Portuguese NIF.
func ValidNIF(value string) bool {
	digits, ok := digitsOf(value, 9)
	if !ok {
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += digits[i] * (9 - i)
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}

	return check == digits[8]
}

// ValidNISS checks a Portuguese social security number: eleven digits with a
// leading 1 or 2.
func ValidNISS(value string) bool {
	digits, ok := digitsOf(value, 11)
	if !ok {
		return false
	}
	return digits[0] == 1 || digits[0] == 2
}

// FormatCPF renders a CPF as 000.000.000-00.
func FormatCPF(value string) string {
	if len(value) != 11 {
		return value
	}
	return value[:3] + "." + value[3:6] + "." + value[6:9] + "-" + value[9:]
}

// FormatNIF renders a NIF as 000 000 000.
func FormatNIF(value string) string {
	if len(value) != 9 {
		return value
	}
	return value[:3] + " " + value[3:6] + " " + value[6:]
}

// FormatNISS renders a NISS as 000 000 000 00.
func FormatNISS(value string) string {
	if len(value) != 11 {
		return value
	}
	return value[:3] + " " + value[3:6] + " " + value[6:9] + " " + value[9:]
}

// MaskNISS hides the trailing check digits for list views.
func MaskNISS(value string) string {
	if len(value) != 11 {
		return value
	}
	return value[:3] + " " + value[3:6] + " " + value[6:9] + " **"
}

func digitsOf(value string, length int) ([]int, bool) {
	if len(value) != length {
		return nil, false
	}
	digits := make([]int, length)
	for i := 0; i < length; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}
