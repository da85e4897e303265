package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+PercentEncode(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

type JSON map[string]any

type Array []JSON

func (j JSON) ToReader() (io.Reader, string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(b), "application/json", nil
}

func (m JSON) GetJSON(key string) (JSON, error) {
	value, err := m.Get(key)
	if err != nil {
		return nil, err
	}

	if value == nil {
		return nil, nil
	}

	switch t := value.(type) {
	case JSON:
		return t, nil
	case map[string]any:
		return JSON(t), nil
	}

	return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetInt(key string) (int, error) {
	value, err := m.Get(key)
	if err != nil {
		return 0, err
	}

	switch t := value.(type) {
	case int:
		return t, nil
	case float64:
		if t == float64(int(t)) {
			return int(t), nil
		}
		return 0, fmt.Errorf("invalid type of field %s (actually float64)", key)
	}

	return 0, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetInt64(key string) (int64, error) {
	value, err := m.Get(key)
	if err != nil {
		return 0, err
	}

	switch t := value.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		if t == float64(int64(t)) {
			return int64(t), nil
		}
		return 0, fmt.Errorf("invalid type of field %s (actually float64)", key)
	}

	return 0, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetBool(key string) (bool, error) {
	value, err := m.Get(key)
	if err != nil {
		return false, err
	}

	if value == nil {
		return false, nil
	}

	if b, ok := value.(bool); ok {
		return b, nil
	}

	return false, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetArray(key string) (Array, error) {
	value, err := m.Get(key)
	if err != nil {
		return nil, err
	}

	if value == nil {
		return nil, nil
	}

	switch t := value.(type) {
	case Array:
		return t, nil
	case []any:
		result := make(Array, 0, len(t))
		for i, elem := range t {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid type of element %d of field %s (%T)", i, key, elem)
			}
			result = append(result, JSON(obj))
		}
		return result, nil
	}

	return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) GetString(key string) (string, error) {
	value, err := m.Get(key)
	if err != nil {
		return "", err
	}

	if value == nil {
		return "", nil
	}

	if s, ok := value.(string); ok {
		return s, nil
	}

	return "", fmt.Errorf("invalid type of field %s (%T)", key, value)
}

func (m JSON) Get(key string) (any, error) {
	key, subKey, found := strings.Cut(key, ".")

	value, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("not found field %s", key)
	}

	if found {
		if mvalue, ok := value.(map[string]any); ok {
			return JSON(mvalue).Get(subKey)
		}
		return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
	}

	return value, nil
}

func bytesToJSON(body []byte) (JSON, error) {
	result := JSON{}
	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func bytesToArray(body []byte) (Array, error) {
	result := []any{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	array := make(Array, 0, len(result))
	for i, elem := range result {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid type of element %d (%T)", i, elem)
		}
		array = append(array, JSON(obj))
	}

	return array, nil
}

type Response struct {
	Code    int
	Header  http.Header
	Body    any
	RawBody []byte
}

// Success reports whether the response carries a 2xx status.
func (r *Response) Success() bool {
	return r.Code >= 200 && r.Code < 300
}

// Message extracts the backend-provided message field of the body. When the
// body carries no such field, the caller-supplied fallback is returned. This
// is the only place an error message is ever recovered from a response.
func (r *Response) Message(fallback string) string {
	if body, ok := r.Body.(JSON); ok {
		if msg, err := body.GetString("message"); err == nil && msg != "" {
			return msg
		}
	}

	return fallback
}
