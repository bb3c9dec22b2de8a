// Package fingerprint computes 128-bit content fingerprints for change
// detection. XXH3-128 is deterministic and collision-resistant for
// arbitrary byte streams without being a cryptographic hash, which is
// all change detection needs.
package fingerprint

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// chunkSize is the read granularity when streaming a file into the
// hasher. The digest does not depend on chunk boundaries.
const chunkSize = 4096

// Fingerprint is a 128-bit content digest. The zero value is never a
// valid result of hashing; errors are reported separately.
type Fingerprint struct {
	Hi uint64
	Lo uint64
}

// String renders the fingerprint as a fixed-width hexadecimal value,
// "0x" followed by 32 lower-case hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("0x%016x%016x", f.Hi, f.Lo)
}

// File hashes the content of the file at path. The file is opened
// fresh and closed before returning; no handle is retained. Any open
// or read failure means no fingerprint is available.
func File(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fp, err := Reader(f)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return fp, nil
}

// Reader hashes r to exhaustion in fixed-size chunks.
func Reader(r io.Reader) (Fingerprint, error) {
	h := xxh3.New()
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Fingerprint{}, err
		}
	}
	sum := h.Sum128()
	return Fingerprint{Hi: sum.Hi, Lo: sum.Lo}, nil
}
