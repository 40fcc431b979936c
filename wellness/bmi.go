package wellness

import "errors"

// ErrInvalidMeasurement is returned for non-positive height or weight.
var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// BMICategory is the standard weight classification for a BMI value.
type BMICategory int

const (
	// Underweight is BMI below 18.5.
	Underweight BMICategory = iota + 1
	// NormalWeight is BMI in [18.5, 25).
	NormalWeight
	// Overweight is BMI in [25, 30).
	Overweight
	// Obese is BMI of 30 or above.
	Obese
)

func (c BMICategory) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case NormalWeight:
		return "Normal weight"
	case Overweight:
		return "Overweight"
	case Obese:
		return "Obese"
	default:
		return "Unknown"
	}
}

// BMI computes body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// CategoryForBMI classifies a BMI value.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
