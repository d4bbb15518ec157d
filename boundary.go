package memlat

// Cache sizes of the AMD Ryzen 9 6900HS the reference data was taken on.
const (
	L1Size uint64 = 64 << 10
	L2Size uint64 = 512 << 10
	L3Size uint64 = 16 << 20
)

var defaultBoundaries = [...]CacheBoundary{
	{Label: "L1 (64 KB)", Size: L1Size, Color: "#ff0000"},
	{Label: "L2 (512 KB)", Size: L2Size, Color: "#008000"},
	{Label: "L3 (16 MB)", Size: L3Size, Color: "#a52a2a"},
}

// DefaultBoundaries returns the L1, L2 and L3 markers, smallest first.
func DefaultBoundaries() []CacheBoundary {
	out := make([]CacheBoundary, len(defaultBoundaries))
	copy(out, defaultBoundaries[:])
	return out
}
