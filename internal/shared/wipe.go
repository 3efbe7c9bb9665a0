// Package shared holds small helpers used by more than one client package.
package shared

// Wipe overwrites each slice with zeros. Use it on passwords once they
// have been sent. Nil slices are ignored.
func Wipe(bs ...[]byte) {
	for _, b := range bs {
		for i := range b {
			b[i] = 0
		}
	}
}
