package log

import "runtime"

func stackTrace() []byte {
	const size = 4096
	buf := make([]byte, size)
	n := runtime.Stack(buf, false)
	return buf[:n]
}
