package mutf8

import "unsafe"

// bytesView returns a string that shares memory with p.
// The string must not outlive the call that made it.
func bytesView(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(p), len(p))
}
