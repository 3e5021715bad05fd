package core

import "strconv"

// Parameter describes a single value exposed by a simulation for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer-valued Parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}
