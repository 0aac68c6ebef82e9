package fontatlas

// pairKey packs an ordered codepoint pair into one map key.
type pairKey uint64

func makePairKey(left, right rune) pairKey {
	return pairKey(uint64(uint32(left))<<32 | uint64(uint32(right)))
}

// Kerning returns the horizontal adjustment in pixels between left and
// right. The rasterizer is asked once per ordered pair; results are kept
// until Reset.
func (f *Font) Kerning(left, right rune) int {
	return f.kerning.GetOrCreate(makePairKey(left, right), func() int {
		return f.rasterizer.Kerning(left, right)
	})
}
