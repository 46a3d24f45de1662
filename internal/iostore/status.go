package iostore

import (
	"fmt"

	"github.com/pulsegen/pulsegen/schema"
)

// PrintStoreStatus prints run tracking status information.
func PrintStoreStatus(status *schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run: %s\n", status.LastRun.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Activities Generated: %d\n", status.TotalActivities)
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
