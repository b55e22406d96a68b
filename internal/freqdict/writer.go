package freqdict

import (
	"bufio"
	"fmt"
	"io"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

// Write serialises a frequency mapping to the tab-separated frequency-file
// format: one `token<TAB>frequency` line per entry, sorted by descending
// frequency, frequencies formatted with 5 significant digits. Entries below
// the noise floor are omitted. This format always represents frequencies,
// never raw counts; a mapping still containing the __total__ sentinel is a
// caller error.
func Write(w io.Writer, m Mapping) error {
	if _, ok := m[TotalToken]; ok {
		return apperrors.Newf(apperrors.ErrValueUsage, 6,
			"mapping still contains the %s sentinel", TotalToken)
	}
	bw := bufio.NewWriter(w)
	for _, entry := range m.Sorted() {
		if entry.Freq < MinFrequency {
			break
		}
		if _, err := fmt.Fprintf(bw, "%s\t%.5g\n", entry.Token, entry.Freq); err != nil {
			return fmt.Errorf("writing frequency line: %w", err)
		}
	}
	return bw.Flush()
}
