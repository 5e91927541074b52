package analysis

import "context"

type CVEFinder interface {
	FindCVEs(ctx context.Context, service, version string) []string
}

type Advisor interface {
	Recommend(ctx context.Context, service, version string, cves []string) string
}
