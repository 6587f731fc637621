// Package json is the project-wide JSON codec, backed by sonic.
package json

import (
	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}

func MarshalString(v interface{}) (string, error) {
	return api.MarshalToString(v)
}
