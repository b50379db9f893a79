package tools

import (
	"reflect"
	"regexp"
	"strconv"

	"github.com/modern-go/reflect2"
)

// DoTagFunc applies fn to every exported field of the struct pointed to by v.
func DoTagFunc(v interface{}, fn []func(reflect.StructField, reflect.Value)) {
	if reflect2.IsNil(v) {
		return
	}

	vType := reflect2.TypeOf(v).Type1()
	switch vType.Kind() {
	case reflect.Interface, reflect.Ptr:
	default:
		// only pointers can be set
		return
	}

	indirect := reflect.Indirect(reflect.ValueOf(v))
	for i := 0; i < indirect.NumField(); i++ {
		field := indirect.Field(i)
		fieldStruct := vType.Elem().Field(i)

		for _, f := range fn {
			f(fieldStruct, field)
		}
	}
}

// SetDefaultValueIfNil fills zero-valued fields from their `default` tag,
// descending into nested structs and non-nil struct pointers.
func SetDefaultValueIfNil(structField reflect.StructField, vValue reflect.Value) {
	if !vValue.CanSet() {
		return
	}
	structTag := structField.Tag
	if containTag(structTag, "default") || vValue.Kind() == reflect.Struct || vValue.Kind() == reflect.Ptr {
		switch vValue.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if vValue.Int() == 0 {
				v, _ := strconv.Atoi(structTag.Get("default"))
				vValue.SetInt(int64(v))
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if vValue.Uint() == 0 {
				v, _ := strconv.Atoi(structTag.Get("default"))
				vValue.SetUint(uint64(v))
			}
		case reflect.String:
			if vValue.String() == "" {
				vValue.SetString(structTag.Get("default"))
			}
		case reflect.Float32, reflect.Float64:
			if vValue.Float() == 0 {
				v, _ := strconv.ParseFloat(structTag.Get("default"), 64)
				vValue.SetFloat(v)
			}
		case reflect.Struct:
			t := structField.Type
			for i := 0; i < t.NumField(); i++ {
				SetDefaultValueIfNil(t.Field(i), vValue.Field(i))
			}
		case reflect.Ptr:
			if vValue.IsNil() {
				return
			}
			elem := vValue.Elem()
			if elem.Kind() != reflect.Struct {
				return
			}
			for i := 0; i < elem.NumField(); i++ {
				SetDefaultValueIfNil(elem.Type().Field(i), elem.Field(i))
			}
		default:
		}
	}
}

func containTag(tag reflect.StructTag, tagName string) bool {
	return regexp.MustCompile(`\b` + tagName + `\b`).Match([]byte(tag))
}
