package internal

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mholt/archives"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// SourceReader loads the whole search body for a path.
type SourceReader interface {
	ReadSource(ctx context.Context, path string) (string, error)
}

// FileSource reads files from disk. Single-stream compressed files
// (gz, bz2, xz, zst, ...) are decompressed on the fly.
type FileSource struct{}

func NewFileSource() *FileSource { return &FileSource{} }

func (*FileSource) ReadSource(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	if st.Mode().IsRegular() && st.Size() == 0 {
		return "", nil
	}

	r, closeFn, err := decompressed(ctx, path, f)
	if err != nil {
		return "", err
	}
	defer closeFn()

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decompressed wraps f with a decompressor when its header says it is
// compressed. Detection ignores the file name: names like release.branches.txt
// must not pick a codec. Anything else, archives included, is passed through raw.
func decompressed(ctx context.Context, path string, f *os.File) (io.Reader, func(), error) {
	noop := func() {}
	raw := func() (io.Reader, func(), error) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, noop, err
		}
		return f, noop, nil
	}

	format, stream, err := archives.Identify(ctx, "", f)
	if err != nil {
		if !errors.Is(err, archives.NoMatch) {
			logrus.WithError(err).WithField("file", path).Debug("Format detection failed, reading raw")
			return raw()
		}
		if stream == nil {
			return raw()
		}
		return stream, noop, nil
	}

	dec, ok := format.(archives.Decompressor)
	if !ok {
		logrus.WithFields(logrus.Fields{"file": path, "format": format.Extension()}).Debug("Not a compressed stream, reading raw")
		return stream, noop, nil
	}
	rc, err := dec.OpenReader(stream)
	if err != nil {
		logrus.WithError(err).WithField("file", path).Debug("Decompressor rejected input, reading raw")
		return raw()
	}
	logrus.WithFields(logrus.Fields{"file": path, "format": format.Extension()}).Debug("Decompressing input")
	return rc, func() { _ = rc.Close() }, nil
}

// CapturePiped reads stdin to EOF when it is not attached to a terminal.
// ok is false for an interactive terminal; piped empty input gives ("", true).
func CapturePiped(stdin *os.File) (content string, ok bool, err error) {
	if stdin == nil || term.IsTerminal(int(stdin.Fd())) {
		return "", false, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", true, err
	}
	logrus.Debugf("Captured %d bytes from standard input", len(b))
	return string(b), true, nil
}
