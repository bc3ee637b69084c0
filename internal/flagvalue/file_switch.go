package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// _stdDest is the value recorded when a FileSwitch
// is passed without a file name.
const _stdDest = "-"

// FileSwitch is a flag that may be passed as "-x" or "-x=file".
//
// It selects where optional output such as debug logs goes:
// nowhere if the flag is absent,
// a fallback writer if it's passed without a value,
// or the named file.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file name,
// "-" if the flag was passed without one,
// or an empty string if the flag was not passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag allows this flag to be passed without a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set records the value passed on the command line.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = _stdDest
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether output was requested.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination selected by this flag.
// The caller must close the returned writer.
// Closing it never closes fallback.
//
//   - flag absent: output is discarded
//   - flag without a value: output goes to fallback
//   - flag with a value: the file is created or truncated
func (fs *FileSwitch) Create(fallback io.Writer) (io.WriteCloser, error) {
	switch *fs {
	case "":
		return nopCloser{io.Discard}, nil
	case _stdDest:
		return nopCloser{fallback}, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return f, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
