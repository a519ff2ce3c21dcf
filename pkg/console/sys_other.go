//go:build !unix

package console

import "errors"

func sysWrite(fd int, p []byte) (int, error) {
	return 0, errors.ErrUnsupported
}
