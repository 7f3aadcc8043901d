package board

// ChannelCount is the number of relays (and opto inputs) on one card.
const ChannelCount = 4

// Relay channels 1..4 sit on expander bits 7..4 and the opto inputs on bits
// 3..0, both in reverse order. The tables encode physical wiring, not
// convention; do not reorder them.
var relayMaskRemap = [ChannelCount]uint8{0x80, 0x40, 0x20, 0x10}

var inMaskRemap = [ChannelCount]uint8{0x08, 0x04, 0x02, 0x01}

// RelayToIO converts a logical relay mask (bit 0 = channel 1) to the
// physical output register value.
func RelayToIO(relay uint8) uint8 {
	var val uint8
	for i := 0; i < ChannelCount; i++ {
		if relay&(1<<i) != 0 {
			val |= relayMaskRemap[i]
		}
	}
	return val
}

// IOToRelay converts a physical register value back to a logical relay mask.
func IOToRelay(io uint8) uint8 {
	var val uint8
	for i := 0; i < ChannelCount; i++ {
		if io&relayMaskRemap[i] != 0 {
			val |= 1 << i
		}
	}
	return val
}

// IOToIn converts a physical register value to a logical input mask. The
// opto inputs are active-low: a clear bit reads as asserted.
func IOToIn(io uint8) uint8 {
	var val uint8
	for i := 0; i < ChannelCount; i++ {
		if io&inMaskRemap[i] == 0 {
			val |= 1 << i
		}
	}
	return val
}
