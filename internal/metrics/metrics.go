package metrics

import (
	"fmt"
	"runtime"
	"time"
)

// Snapshot is a point-in-time view of the running process.
type Snapshot struct {
	Time       string `json:"time"`
	Memory     string `json:"memory"`
	Goroutines int    `json:"goroutines"`
}

// Collect samples the process: wall-clock time, heap in use, and live
// goroutine count.
func Collect() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Snapshot{
		Time:       time.Now().Format("2006-01-02 15:04:05.000"),
		Memory:     fmt.Sprintf("%.2f MB", float64(ms.HeapInuse)/1024/1024),
		Goroutines: runtime.NumGoroutine(),
	}
}
