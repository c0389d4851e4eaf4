//go:build !unix

package shell

import "os"

func newFileReader(f *os.File) (Reader, bool) {
	return nil, false
}
