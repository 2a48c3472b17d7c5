package fsutils

import (
	"io"
	"os"
)

// ReadClipped reads at most limit bytes of a file: the head when limit is
// positive, the tail when it is negative, everything when it is zero.
func ReadClipped(path string, limit int) ([]byte, error) {
	if limit == 0 {
		return os.ReadFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	if limit > 0 {
		return io.ReadAll(io.LimitReader(f, int64(limit)))
	}
	tail := int64(-limit)
	if _, err = f.Seek(-tail, io.SeekEnd); err != nil {
		// The file is shorter than the tail: read it from the start.
		if _, err = f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}
	return io.ReadAll(f)
}
