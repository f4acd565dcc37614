package clockgen

// Potentiometer scaling: the first 20% of the 12-bit ADC range spans
// 1-100 Hz, the remaining 80% spans 100 Hz-100 kHz. 4095 * 0.2 = 819.
const (
	potSplit = 819
	potMax   = 4095
	minLowHz = 1
	splitHz  = 100
	maxLowHz = 100000
)

// FrequencyFromPot maps a raw 12-bit potentiometer sample to a target
// frequency in Hz. A sample exactly at the 20% mark belongs to the low
// sub-range. Integer math throughout, so the map is monotonic and the
// endpoints are exact.
func FrequencyFromPot(adc uint16) uint32 {
	v := uint32(adc)
	if v > potMax {
		v = potMax
	}
	if v <= potSplit {
		return minLowHz + v*(splitHz-minLowHz)/potSplit
	}
	v -= potSplit
	return splitHz + v*(maxLowHz-splitHz)/(potMax-potSplit)
}
