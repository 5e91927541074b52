package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/vulnscan/internal/domain"
)

func (g *Generator) csv(w io.Writer, scan *domain.Scan) error {
	writer := csv.NewWriter(w)
	enc := csvutil.NewEncoder(writer)

	rs := records(scan)

	var err error
	if len(rs) == 0 {
		err = enc.EncodeHeader(serviceRecord{})
	} else {
		err = enc.Encode(rs)
	}
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
