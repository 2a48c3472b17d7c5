package files

import (
	"io/fs"
	"strconv"
	"strings"
)

// Permissions holds the 9 POSIX rwx bits for owner, group and other.
type Permissions uint16

const (
	permRead  = 0b100
	permWrite = 0b010
	permExec  = 0b001
)

func PermissionsFromMode(mode fs.FileMode) Permissions {
	return Permissions(mode.Perm())
}

func (p Permissions) Owner() uint8 {
	return uint8(p>>6) & 0b111
}

func (p Permissions) Group() uint8 {
	return uint8(p>>3) & 0b111
}

func (p Permissions) Other() uint8 {
	return uint8(p) & 0b111
}

// String renders the permissions as "rwxr-xr-x".
func (p Permissions) String() string {
	var sb strings.Builder
	sb.Grow(9)
	for _, triple := range []uint8{p.Owner(), p.Group(), p.Other()} {
		sb.WriteString(rwx(triple))
	}
	return sb.String()
}

// Octal renders the permissions as three octal digits, e.g. "755".
func (p Permissions) Octal() string {
	s := strconv.FormatUint(uint64(p&0o777), 8)
	return strings.Repeat("0", 3-len(s)) + s
}

func rwx(triple uint8) string {
	b := []byte("---")
	if triple&permRead != 0 {
		b[0] = 'r'
	}
	if triple&permWrite != 0 {
		b[1] = 'w'
	}
	if triple&permExec != 0 {
		b[2] = 'x'
	}
	return string(b)
}
