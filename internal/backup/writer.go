// Package backup writes timestamped backup artifacts of a watched
// file. Artifacts are never rewritten or removed once created;
// retention is out of scope.
package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"filebak/internal/errors"
)

// Suffix is appended (after the timestamp) to every artifact path.
const Suffix = ".bak"

// zstdLevel mirrors the balanced speed/compression setting used for
// content storage.
const zstdLevel = 2

// Writer creates backup artifacts next to the source file.
type Writer struct {
	// Compress writes zstd-compressed artifacts (.bak.zst) instead
	// of plain copies.
	Compress bool
}

// ArtifactPath derives the destination path for a backup of src taken
// at timestamp ts.
func (w *Writer) ArtifactPath(src, ts string) string {
	p := src + "." + ts + Suffix
	if w.Compress {
		p += ".zst"
	}
	return p
}

// Backup copies the current content of src to a new artifact and
// returns the path written. If the derived path already exists (two
// changes detected within the same millisecond), a numeric suffix is
// probed instead of overwriting. Failures are fatal to the caller; no
// retry.
func (w *Writer) Backup(src, ts string) (string, error) {
	dst := w.ArtifactPath(src, ts)
	for n := 1; ; n++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = w.ArtifactPath(src, fmt.Sprintf("%s-%d", ts, n))
	}

	if err := w.copy(src, dst); err != nil {
		return "", errors.CopyError(fmt.Sprintf("unable to copy a backup of %s", src), err)
	}
	return dst, nil
}

func (w *Writer) copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	var sink io.Writer = out
	var enc *zstd.Encoder
	if w.Compress {
		enc, err = zstd.NewWriter(out,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			out.Close()
			return fmt.Errorf("creating encoder: %w", err)
		}
		sink = enc
	}

	if _, err := io.Copy(sink, in); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			out.Close()
			return fmt.Errorf("finalizing compression: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// Restore reads an artifact back, transparently decompressing zstd
// content. Mostly useful for verifying compressed backups.
func Restore(path string, dst io.Writer) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening artifact: %w", err)
	}
	defer in.Close()

	magic := make([]byte, 4)
	n, _ := io.ReadFull(in, magic)
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	// zstd frame magic
	if n == 4 && magic[0] == 0x28 && magic[1] == 0xB5 && magic[2] == 0x2F && magic[3] == 0xFD {
		dec, err := zstd.NewReader(in, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return fmt.Errorf("creating decoder: %w", err)
		}
		defer dec.Close()
		_, err = io.Copy(dst, dec)
		return err
	}

	_, err = io.Copy(dst, in)
	return err
}
