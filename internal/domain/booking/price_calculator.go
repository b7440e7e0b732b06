package booking

type PriceCalculator interface {
	CalculatePrice(hourlyRate Money, slot TimeSlot) Money
}

type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

// CalculatePrice charges hourlyRate pro rata to the second, rounded half up to the cent.
func (HourlyPriceCalculator) CalculatePrice(hourlyRate Money, slot TimeSlot) Money {
	secs := int64(slot.end - slot.start)
	return Money{cents: (hourlyRate.cents*secs + secondsPerHour/2) / secondsPerHour}
}
