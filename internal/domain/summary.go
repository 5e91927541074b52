package domain

type Summary struct {
	TotalServices     int              `json:"total_services"`
	SeverityBreakdown map[Severity]int `json:"severity_breakdown"`
	HighRiskCount     int              `json:"high_risk_count"`
	MediumRiskCount   int              `json:"medium_risk_count"`
	LowRiskCount      int              `json:"low_risk_count"`
}

func Summarize(services []*Service) Summary {
	breakdown := make(map[Severity]int)
	for _, s := range services {
		breakdown[s.Severity]++
	}

	return Summary{
		TotalServices:     len(services),
		SeverityBreakdown: breakdown,
		HighRiskCount:     breakdown[SeverityHigh],
		MediumRiskCount:   breakdown[SeverityMedium],
		LowRiskCount:      breakdown[SeverityLow],
	}
}
