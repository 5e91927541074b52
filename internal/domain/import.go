package domain

// ImportResult is a scan imported from a report file dropped into the watch
// directory.
type ImportResult struct {
	Filename string
	Scan     *Scan
}
