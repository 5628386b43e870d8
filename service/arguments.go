package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ArgKind int

const (
	ArgMissing ArgKind = iota
	ArgString
	ArgInteger
	ArgOther
)

func (k ArgKind) String() string {
	switch k {
	case ArgMissing:
		return "missing"
	case ArgString:
		return "string"
	case ArgInteger:
		return "integer"
	}
	return "other"
}

// ArgValue is one classified entry of a tool argument bag.
type ArgValue struct {
	Kind ArgKind
	Str  string
	Int  int
	Raw  any
}

// ClassifyArgument sorts a decoded JSON value into string, integer or other.
// Floating point values count as integers only when they have no fraction.
func ClassifyArgument(v any) ArgValue {
	switch val := v.(type) {
	case nil:
		return ArgValue{Kind: ArgMissing}
	case string:
		return ArgValue{Kind: ArgString, Str: val, Raw: v}
	case int:
		return ArgValue{Kind: ArgInteger, Int: val, Raw: v}
	case int32:
		return ArgValue{Kind: ArgInteger, Int: int(val), Raw: v}
	case int64:
		if val < math.MinInt || val > math.MaxInt {
			return ArgValue{Kind: ArgOther, Raw: v}
		}
		return ArgValue{Kind: ArgInteger, Int: int(val), Raw: v}
	case float64:
		// beyond 2^53 a float no longer identifies a single integer
		if val != math.Trunc(val) || math.IsInf(val, 0) || math.Abs(val) > 1<<53 {
			return ArgValue{Kind: ArgOther, Raw: v}
		}
		return ArgValue{Kind: ArgInteger, Int: int(val), Raw: v}
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return ClassifyArgument(n)
		}
		if f, err := val.Float64(); err == nil {
			return ClassifyArgument(f)
		}
		return ArgValue{Kind: ArgOther, Raw: v}
	}
	return ArgValue{Kind: ArgOther, Raw: v}
}

// Arguments is the argument bag of a single tool call.
type Arguments map[string]any

// asArguments accepts the shapes a transport may hand over for a JSON object.
func asArguments(raw any) (Arguments, error) {
	switch args := raw.(type) {
	case nil:
		return Arguments{}, nil
	case Arguments:
		return args, nil
	case map[string]any:
		return Arguments(args), nil
	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(args, &m); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		return Arguments(m), nil
	}
	return nil, fmt.Errorf("arguments must be an object, got %T", raw)
}

func (a Arguments) Get(key string) ArgValue {
	v, exist := a[key]
	if !exist {
		return ArgValue{Kind: ArgMissing}
	}
	return ClassifyArgument(v)
}

// RequireString returns the trimmed, non-empty string stored under key.
func (a Arguments) RequireString(key string) (string, error) {
	v := a.Get(key)
	switch v.Kind {
	case ArgMissing:
		return "", newToolError(MissingParameter, "missing required parameter %q", key)
	case ArgString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return "", newToolError(MissingParameter, "parameter %q must not be empty", key)
		}
		return s, nil
	}
	return "", newToolError(InvalidParameterType, "parameter %q must be a string, got %s", key, v.Kind)
}

// RequireInt returns the integer stored under key. Decimal strings are accepted.
func (a Arguments) RequireInt(key string) (int, error) {
	v := a.Get(key)
	switch v.Kind {
	case ArgMissing:
		return 0, newToolError(MissingParameter, "missing required parameter %q", key)
	case ArgInteger:
		return v.Int, nil
	case ArgString:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, newToolError(InvalidParameterType, "parameter %q must be an integer, got %q", key, v.Str)
		}
		return n, nil
	}
	return 0, newToolError(InvalidParameterType, "parameter %q must be an integer, got %v", key, v.Raw)
}
