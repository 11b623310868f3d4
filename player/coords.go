package player

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dodgebc/weiqi-agents/weiqi"
)

// columns skips I, as on a real board
const columns = "ABCDEFGHJKLMNOPQRST"

// PassName is the external name of a pass
const PassName = "PASS"

// ParseMove converts a name like "C7" or "pass" into a flat index
func ParseMove(s string, size int) (int, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == PassName {
		return weiqi.Pass, nil
	}
	if size < weiqi.MinSize || size > weiqi.MaxSize {
		return weiqi.Pass, errors.Errorf("invalid board size %d", size)
	}
	if len(name) < 2 {
		return weiqi.Pass, errors.Errorf("invalid move name %q", s)
	}
	x := strings.IndexByte(columns, name[0])
	digits := name[1:]
	// no sign and no leading zero, so each name has one spelling
	if digits[0] < '0' || digits[0] > '9' || (digits[0] == '0' && len(digits) > 1) {
		return weiqi.Pass, errors.Errorf("invalid move name %q", s)
	}
	y, err := strconv.Atoi(digits)
	if x < 0 || err != nil {
		return weiqi.Pass, errors.Errorf("invalid move name %q", s)
	}
	if x >= size || y < 1 || y > size {
		return weiqi.Pass, errors.Wrapf(weiqi.ErrOutsideBoard, "move %q on %dx%d", s, size, size)
	}
	return (y-1)*size + x, nil
}

// FormatMove converts a flat index into its name, "" when it is off the board
func FormatMove(m int, size int) string {
	if m == weiqi.Pass {
		return PassName
	}
	if size < weiqi.MinSize || size > weiqi.MaxSize || m < 0 || m >= size*size {
		return ""
	}
	return string(columns[m%size]) + strconv.Itoa(m/size+1)
}
