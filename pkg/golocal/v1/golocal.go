//go:build go1.4
// +build go1.4

package v1

import (
	"sync"

	"github.com/modern-go/gls"
)

const RequestID = "X-Request-ID"

var localMap sync.Map

func getMapByGoID(goID int64) *sync.Map {
	value, _ := localMap.Load(goID)
	if value == nil {
		_tmp := &sync.Map{}
		localMap.Store(goID, _tmp)
		return _tmp
	}
	return value.(*sync.Map)
}

func PutTraceID(value string) {
	m := getMapByGoID(gls.GoID())
	m.Store(RequestID, value)
}

func GetTraceID() string {
	m := getMapByGoID(gls.GoID())
	if v, ok := m.Load(RequestID); ok {
		return v.(string)
	}
	return ""
}

func Put(key string, value interface{}) {
	getMapByGoID(gls.GoID()).Store(key, value)
}

func Get(key string) interface{} {
	if v, ok := getMapByGoID(gls.GoID()).Load(key); ok {
		return v
	}
	return nil
}

func Clean() {
	localMap.Delete(gls.GoID())
}
