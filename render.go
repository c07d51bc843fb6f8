package staticfmt

import "fmt"

// piece is one specifier's rendering, held in whatever form lets its byte
// length be known before the output buffer is allocated.
type piece struct {
	text  string
	raw   []byte
	neg   bool
	mag   uint64
	isInt bool
}

func (pc piece) len() int {
	switch {
	case pc.isInt:
		return decimalLen(pc.neg, pc.mag)
	case pc.raw != nil:
		return len(pc.raw)
	default:
		return len(pc.text)
	}
}

// Render renders the pattern with args into a buffer sized exactly up front:
// the total length is the sum of all literal spans and all rendered
// specifiers, computed before any byte is written, so the buffer never grows.
//
// Render must only be called after [Pattern.Validate] has accepted the same
// args. It panics on arguments that did not pass validation.
func (p *Pattern) Render(args ...any) string {
	if len(args) != p.numArgs {
		panic(fmt.Sprintf("staticfmt: Render: pattern %q takes %d arguments, got %d", p.src, p.numArgs, len(args)))
	}
	n := 0
	for _, lit := range p.literals {
		n += len(lit)
	}
	pieces := make([]piece, len(p.specs))
	for i, sp := range p.specs {
		pieces[i] = p.renderSpec(sp, args)
		n += pieces[i].len()
	}
	buf := make([]byte, 0, n)
	buf = append(buf, p.literals[0]...)
	for i := range p.specs {
		buf = appendPiece(buf, pieces[i])
		buf = append(buf, p.literals[i+1]...)
	}
	return string(buf)
}

func (p *Pattern) renderSpec(sp specifier, args []any) piece {
	if sp.arg == noArg {
		return piece{text: sp.literal}
	}
	arg := args[sp.arg]
	if sp.conv.Render != nil {
		return piece{text: sp.conv.Render(arg)}
	}
	switch v := arg.(type) {
	case string:
		return piece{text: v}
	case []byte:
		return piece{raw: v}
	}
	neg, mag, ok := intMagnitude(arg)
	if !ok {
		panic(fmt.Sprintf("staticfmt: Render: argument %d (%T) does not satisfy %%%c; call Validate first", sp.arg, arg, sp.conv.Verb))
	}
	return piece{neg: neg, mag: mag, isInt: true}
}

func appendPiece(buf []byte, pc piece) []byte {
	switch {
	case pc.isInt:
		return appendDecimal(buf, pc.neg, pc.mag)
	case pc.raw != nil:
		return append(buf, pc.raw...)
	default:
		return append(buf, pc.text...)
	}
}

// intMagnitude splits any built-in integer into sign and magnitude. The
// magnitude of the most negative value of each signed width fits in uint64,
// so no overflow case exists.
func intMagnitude(arg any) (neg bool, mag uint64, ok bool) {
	switch v := arg.(type) {
	case int:
		return signedMagnitude(int64(v))
	case int8:
		return signedMagnitude(int64(v))
	case int16:
		return signedMagnitude(int64(v))
	case int32:
		return signedMagnitude(int64(v))
	case int64:
		return signedMagnitude(v)
	case uint:
		return false, uint64(v), true
	case uint8:
		return false, uint64(v), true
	case uint16:
		return false, uint64(v), true
	case uint32:
		return false, uint64(v), true
	case uint64:
		return false, v, true
	case uintptr:
		return false, uint64(v), true
	}
	return false, 0, false
}

func signedMagnitude(v int64) (neg bool, mag uint64, ok bool) {
	neg = v < 0
	mag = uint64(v)
	if neg {
		mag = -mag
	}
	return neg, mag, true
}

func decimalLen(neg bool, mag uint64) int {
	n := 1
	for mag >= 10 {
		mag /= 10
		n++
	}
	if neg {
		n++
	}
	return n
}

// appendDecimal writes mag most-significant-digit first with an optional
// leading minus sign. No leading zeros; zero renders as "0".
func appendDecimal(buf []byte, neg bool, mag uint64) []byte {
	if neg {
		buf = append(buf, '-')
	}
	var digits [20]byte // max uint64 has 20 digits
	i := len(digits)
	for {
		i--
		digits[i] = byte('0' + mag%10)
		mag /= 10
		if mag == 0 {
			break
		}
	}
	return append(buf, digits[i:]...)
}
