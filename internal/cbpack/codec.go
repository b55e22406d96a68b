package cbpack

import (
	"io"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// FormatTag identifies the cBpack format in the envelope header.
	FormatTag = "cB"
	// FormatVersion is the envelope version this package reads and writes.
	FormatVersion = 1
)

// Header is the self-describing first element of the packed envelope.
type Header struct {
	Format  string `msgpack:"format"`
	Version int    `msgpack:"version"`
}

// Encode writes the msgpack envelope: a single array whose first element is
// the header map and whose remaining elements are the tiers.
func Encode(w io.Writer, tiers Tiers) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(len(tiers) + 1); err != nil {
		return err
	}
	if err := enc.Encode(Header{Format: FormatTag, Version: FormatVersion}); err != nil {
		return err
	}
	for _, tier := range tiers {
		if err := enc.Encode(tier); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a msgpack envelope and returns its tiers after validating the
// header.
func Decode(r io.Reader) (Tiers, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrFormatMismatch, 5,
			"not a cBpack envelope: %v", err)
	}
	if n < 1 {
		return nil, apperrors.Newf(apperrors.ErrFormatMismatch, 5,
			"empty cBpack envelope")
	}
	var header Header
	if err := dec.Decode(&header); err != nil {
		return nil, apperrors.Newf(apperrors.ErrFormatMismatch, 5,
			"unreadable cBpack header: %v", err)
	}
	if header.Format != FormatTag {
		return nil, apperrors.Newf(apperrors.ErrFormatMismatch, 5,
			"unexpected format tag %q", header.Format)
	}
	if header.Version != FormatVersion {
		return nil, apperrors.Newf(apperrors.ErrFormatMismatch, 5,
			"unsupported cBpack version %d", header.Version)
	}
	tiers := make(Tiers, 0, n-1)
	for i := 1; i < n; i++ {
		var tier []string
		if err := dec.Decode(&tier); err != nil {
			return nil, apperrors.Newf(apperrors.ErrParse, 2,
				"decoding tier %d: %v", i-1, err)
		}
		if tier == nil {
			tier = []string{}
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}
