package grocery

import (
	"runtime"
	"time"
)

// DateLayout renders dates as dd/MM/yyyy.
const DateLayout = "02/01/2006"

// Info describes the environment the list manager runs in.
type Info struct {
	Date            string `json:"date" yaml:"date"`
	OperatingSystem string `json:"operating_system" yaml:"operating_system"`
	GoVersion       string `json:"go_version" yaml:"go_version"`
}

// SystemInfo reports the given day alongside the host OS and Go runtime.
func SystemInfo(now time.Time) Info {
	return Info{
		Date:            now.Format(DateLayout),
		OperatingSystem: runtime.GOOS,
		GoVersion:       runtime.Version(),
	}
}
