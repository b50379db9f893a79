package tools

import (
	"reflect"
)

// LoadConfig unmarshals a yaml file into v and fills `default` tags on
// fields the file left zero-valued.
func LoadConfig(filename string, v interface{}) error {
	if err := UnmarshalFileYaml(filename, v); err != nil {
		return err
	}

	DoTagFunc(v, []func(reflect.StructField, reflect.Value){SetDefaultValueIfNil})
	return nil
}

// SetDefaults fills `default` tags without reading any file.
func SetDefaults(v interface{}) {
	DoTagFunc(v, []func(reflect.StructField, reflect.Value){SetDefaultValueIfNil})
}
