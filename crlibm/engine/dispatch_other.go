//go:build !amd64 && !arm64

package engine

func init() {
	// Other architectures use Dekker products for now; math.FMA may be a
	// software routine there.
	setLevel(false)
}
