package vec

import "strconv"

// Benchmark sizes shared across benchmark files.
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"1K", 1024},
	{"16K", 16384},
	{"256K", 262144},
	{"1M", 1048576},
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}
