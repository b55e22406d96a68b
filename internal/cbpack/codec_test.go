package cbpack

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// encodeWithHeader writes an envelope with an arbitrary header, for testing
// header validation.
func encodeWithHeader(buf *bytes.Buffer, header Header, tiers Tiers) error {
	enc := msgpack.NewEncoder(buf)
	if err := enc.EncodeArrayLen(len(tiers) + 1); err != nil {
		return err
	}
	if err := enc.Encode(header); err != nil {
		return err
	}
	for _, tier := range tiers {
		if err := enc.Encode(tier); err != nil {
			return err
		}
	}
	return nil
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tiers := Tiers{
		{"the"},
		{},
		{"and", "of"},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, tiers); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, tiers) {
		t.Errorf("round trip = %v, want %v", decoded, tiers)
	}
}

func TestDecodeRejectsForeignData(t *testing.T) {
	_, err := Decode(strings.NewReader("this is not msgpack"))
	if !errors.Is(err, apperrors.ErrFormatMismatch) {
		t.Fatalf("Decode error = %v, want ErrFormatMismatch", err)
	}
}

func TestDecodeValidatesHeader(t *testing.T) {
	cases := []struct {
		name   string
		header Header
	}{
		{"wrong format tag", Header{Format: "dB", Version: 1}},
		{"wrong version", Header{Format: "cB", Version: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encodeWithHeader(&buf, tc.header, Tiers{{"x"}}); err != nil {
				t.Fatalf("encode: %v", err)
			}
			_, err := Decode(&buf)
			if !errors.Is(err, apperrors.ErrFormatMismatch) {
				t.Fatalf("Decode error = %v, want ErrFormatMismatch", err)
			}
		})
	}
}

func TestWriteFileReadFile(t *testing.T) {
	tiers := Tiers{{"the"}, {}, {"cat"}}
	path := filepath.Join(t.TempDir(), "small.cb")
	if err := WriteFile(path, tiers); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !reflect.DeepEqual(loaded, tiers) {
		t.Errorf("loaded = %v, want %v", loaded, tiers)
	}
}

func TestPackThenDecodeRoundTrip(t *testing.T) {
	input := "the\t0.0398\nof\t0.0398\ncat\t0.001\n"
	tiers, err := Pack(strings.NewReader(input), 600)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, tiers); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tier, found := decoded.Lookup("cat"); !found || tier != 300 {
		t.Errorf("Lookup(cat) after round trip = %d, %v", tier, found)
	}
}
