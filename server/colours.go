package server

const (
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m" // Bright black, often appears as gray

	ResetColor = "\033[0m"
)

var methodColors = map[string]string{
	"GET":     Green,
	"HEAD":    Cyan,
	"POST":    Blue,
	"OPTIONS": Magenta,
	"DELETE":  Yellow,
}

var statusColors = map[int]string{
	2: Green,
	3: Cyan,
	4: Yellow,
	5: Red,
}
