package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single tunable value exposed by a preset.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a preset.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam describes an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param describes a 64-bit integer parameter.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// BoolParam describes a boolean parameter.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// IntFromMap parses cfg[key] into dst when present and accepted by ok.
func IntFromMap(cfg map[string]string, key string, dst *int, ok func(int) bool) {
	v, present := cfg[key]
	if !present {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || (ok != nil && !ok(parsed)) {
		return
	}
	*dst = parsed
}

// Positive accepts values greater than zero.
func Positive(v int) bool { return v > 0 }

// NonNegative accepts values of zero or more.
func NonNegative(v int) bool { return v >= 0 }

// BoolFromMap parses cfg[key] into dst when present.
func BoolFromMap(cfg map[string]string, key string, dst *bool) {
	v, present := cfg[key]
	if !present {
		return
	}
	if parsed, err := strconv.ParseBool(v); err == nil {
		*dst = parsed
	}
}
