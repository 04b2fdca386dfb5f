package bigmath

import "math/big"

// Reference values, 200 decimals each. They are only ever compared
// against; no approximation reads them.
const (
	piDigits = "3.14159265358979323846264338327950288419716939937510" +
		"58209749445923078164062862089986280348253421170679" +
		"82148086513282306647093844609550582231725359408128" +
		"48111745028410270193852110555964462294895493038196"

	eDigits = "2.71828182845904523536028747135266249775724709369995" +
		"95749669676277240766303535475945713821785251664274" +
		"27466391932003059921817413596629043572900334295260" +
		"59563073813232862794349076323382988075319525101901"
)

// Pi returns π rounded to precision prec.
func Pi(prec uint) *big.Float {
	return mustParse(piDigits, prec)
}

// E returns Euler's number e rounded to precision prec.
func E(prec uint) *big.Float {
	return mustParse(eDigits, prec)
}

// mustParse parses one of the literals above; they are well-formed, so a
// failure here is a programming error.
func mustParse(s string, prec uint) *big.Float {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		panic("bigmath: bad constant literal: " + err.Error())
	}

	return f
}
