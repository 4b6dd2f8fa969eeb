package element

// Band is an inclusive numeric interval.
type Band struct {
	Lower float64
	Upper float64
}

// BandAround returns the symmetric relative-tolerance band
// [value·(1−p/100), value·(1+p/100)] used by the Hume-Rothery rule.  The band
// is always centred on the target's own property value, whichever property
// is chosen.
func BandAround(value, percentage float64) Band {
	delta := value * percentage / 100
	return Band{Lower: value - delta, Upper: value + delta}
}

// Contains reports whether v lies within the band, bounds included.
func (b Band) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}
