package common

// WipeByteArray overwrites b with zeros. Used on password buffers once
// their contents have been copied out. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
