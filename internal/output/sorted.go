package output

import (
	"sort"

	"github.com/maxvaer/urlprobe/internal/scanner"
)

// SortResults orders the accepted results for presentation. Results arrive
// in completion order, which varies run to run; the sort makes the report
// deterministic for a given result set. The URL is always the final
// tie-break so equal keys keep a stable order.
func SortResults(results []scanner.ScanResult, sortBy string) {
	sort.Slice(results, func(i, j int) bool {
		switch sortBy {
		case "size":
			if results[i].ContentLength != results[j].ContentLength {
				return results[i].ContentLength < results[j].ContentLength
			}
		case "url":
		default: // "status"
			if results[i].StatusCode != results[j].StatusCode {
				return results[i].StatusCode < results[j].StatusCode
			}
		}
		return results[i].URL < results[j].URL
	})
}
