package protocol

// Token capacities are fixed by the protocol surface this server supports:
// one method, one version, and a URI bounded by what is left of the line.
const (
	methodLen  = 3
	versionLen = 8
	uriLen     = MaxRequestLineLen - methodLen - versionLen
)

// RequestLine holds the parsed tokens of a request line. Method is at most
// 3 bytes, URI at most 19, Version at most 8; the parser reports overflow
// instead of truncating silently.
type RequestLine struct {
	Method  string
	URI     string
	Version string
}

// ParseRequestLine splits a captured first line into its three tokens under
// the fixed-width rules: exactly 3 bytes of method, at least one whitespace
// byte, up to 19 bytes of URI, at least one whitespace byte, exactly 8
// bytes of version. The returned status is 200 on success or the HTTP
// status describing the violation. Already-parsed fields stay populated on
// failure so callers can log them.
//
// The fixed widths are part of the observable protocol (a 4-byte method is
// judged by its first 3 bytes); do not generalize this into a lenient
// parser.
func ParseRequestLine(line []byte) (rl RequestLine, status int) {
	if len(line) < methodLen {
		return rl, StatusBadRequest
	}
	rl.Method = string(line[:methodLen])
	if rl.Method != "GET" {
		return rl, StatusMethodNotAllowed
	}

	ix, ok := skipWhitespace(line, methodLen)
	if !ok {
		return rl, StatusBadRequest
	}

	n := 0
	for n < uriLen && ix < len(line) && !isSpace(line[ix]) {
		ix++
		n++
	}
	rl.URI = string(line[ix-n : ix])
	if n == uriLen && (ix >= len(line) || !isSpace(line[ix])) {
		return rl, StatusURITooLong
	}
	if ix >= len(line) {
		// line ended inside the URI with no separator
		return rl, StatusBadRequest
	}

	ix, ok = skipWhitespace(line, ix)
	if !ok {
		return rl, StatusBadRequest
	}

	end := ix + versionLen
	if end > len(line) {
		end = len(line)
	}
	rl.Version = string(line[ix:end])
	if rl.Version != "HTTP/1.1" {
		return rl, StatusVersionNotSupported
	}

	return rl, StatusOK
}

// skipWhitespace advances past one or more whitespace bytes. It fails when
// no whitespace is present or when the line ends before a non-whitespace
// byte follows, so callers never index past the buffer.
func skipWhitespace(line []byte, ix int) (int, bool) {
	start := ix
	for ix < len(line) && isSpace(line[ix]) {
		ix++
	}
	if ix == start || ix >= len(line) {
		return ix, false
	}
	return ix, true
}
