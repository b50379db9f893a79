package protocol

// The server only ever emits this closed set of status codes.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusURITooLong          = 414
	StatusVersionNotSupported = 505
)

var reasonPhrases = map[int]string{
	StatusOK:                  "OK",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusURITooLong:          "URI Too Long",
	StatusVersionNotSupported: "HTTP Version Not Supported",
}

func ReasonPhrase(code int) string {
	return reasonPhrases[code]
}
