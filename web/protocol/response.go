package protocol

import (
	"bytes"
	"fmt"
	"net/http"
	"time"
)

const (
	// ServerName is the Server header value; clients match on it, so it is
	// part of the wire contract.
	ServerName = "hinfosvc/1.0"

	responseBufSize = 512
)

// Probe supplies the host data served on the three routes. Implementations
// live outside the protocol layer; see the sysinfo package.
type Probe interface {
	Hostname() (string, error)
	CPUModelName() (string, error)
	CPULoadPercent() (int, error)
}

// BuildResponse turns a parse status and URI into a complete serialized
// response. Only a 200 status consults the probe; an unknown URI downgrades
// it to 404 with an empty body. A probe failure is returned to the caller
// untouched - it is a process-level fault, not an HTTP error.
//
// The header order is fixed and must not change: status line, Connection,
// Date, Server, Content-Length, Content-Type.
func BuildResponse(status int, uri string, probe Probe, now time.Time) ([]byte, error) {
	var body string

	if status == StatusOK {
		switch uri {
		case "/hostname":
			name, err := probe.Hostname()
			if err != nil {
				return nil, fmt.Errorf("probe hostname: %w", err)
			}
			body = name + "\r\n"
		case "/cpu-name":
			model, err := probe.CPUModelName()
			if err != nil {
				return nil, fmt.Errorf("probe cpu model: %w", err)
			}
			body = model + "\r\n"
		case "/load":
			load, err := probe.CPULoadPercent()
			if err != nil {
				return nil, fmt.Errorf("probe cpu load: %w", err)
			}
			body = fmt.Sprintf("%d%%\r\n", load)
		default:
			status = StatusNotFound
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, responseBufSize))
	fmt.Fprintf(buf, "HTTP/1.1 %d %s\r\n", status, ReasonPhrase(status))
	buf.WriteString("Connection: close\r\n")
	fmt.Fprintf(buf, "Date: %s\r\n", now.UTC().Format(http.TimeFormat))
	fmt.Fprintf(buf, "Server: %s\r\n", ServerName)
	fmt.Fprintf(buf, "Content-Length: %d\r\n", len(body))
	buf.WriteString("Content-Type: text/plain\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}
