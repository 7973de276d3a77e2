package display

import "fmt"

// Core protocol error names, indexed by error code. These mirror the
// text the server's own resolution capability hands back for the core
// range; extension errors fall through to the numeric form.
var coreErrorText = map[int]string{
	1:  "BadRequest: invalid request code or no such operation",
	2:  "BadValue: integer parameter out of range for operation",
	3:  "BadWindow: parameter not a window",
	4:  "BadPixmap: parameter not a pixmap",
	5:  "BadAtom: parameter not an atom",
	6:  "BadCursor: parameter not a cursor",
	7:  "BadFont: parameter not a font",
	8:  "BadMatch: parameter mismatch",
	9:  "BadDrawable: parameter not a pixmap or window",
	10: "BadAccess: attempt to access private resource denied",
	11: "BadAlloc: insufficient resources for operation",
	12: "BadColor: no such colormap",
	13: "BadGC: parameter not a graphics context",
	14: "BadIDChoice: choice not in range or already used",
	15: "BadName: named color or font does not exist",
	16: "BadLength: request length incorrect",
	17: "BadImplementation: server does not implement operation",
}

// LookupErrorText resolves an error code to human-readable text. This
// is the session's stand-in for the server's text-resolution
// capability; unknown codes get a numeric fallback.
func (s *Session) LookupErrorText(code int) string {
	if text, ok := coreErrorText[code]; ok {
		return text
	}
	return fmt.Sprintf("error code %d", code)
}
