package domain

import "strings"

type Severity string

const (
	SeverityHigh    Severity = "High"
	SeverityMedium  Severity = "Medium"
	SeverityLow     Severity = "Low"
	SeverityUnknown Severity = "Unknown"
)

var (
	highRiskServices   = []string{"ssh", "telnet", "ftp", "smtp", "pop3", "imap"}
	mediumRiskServices = []string{"http", "https", "dns", "ntp"}
)

// DetermineSeverity rates a service by its protocol first and falls back to
// the number of known CVEs. The version is not taken into account.
func DetermineSeverity(service, _ string, cveCount int) Severity {
	name := strings.ToLower(service)

	switch {
	case contains(highRiskServices, name):
		return SeverityHigh
	case contains(mediumRiskServices, name):
		return SeverityMedium
	case cveCount > 0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
