package encode

type EncodeOption func(*EncState)

// Depth limits output to entries at most n segments below the root.
// Zero means no limit.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeTotals(v bool) EncodeOption {
	return func(es *EncState) { es.totals = v }
}
