package tools

import (
	"strings"

	"github.com/google/uuid"
)

func UUID() string {
	u, _ := uuid.NewUUID()
	return strings.Replace(u.String(), "-", "", 4)
}
