package ruleconf

import (
	"fmt"

	"voxel-ca/pkg/automaton"
	"voxel-ca/pkg/core"
)

// Node is the YAML form of one rule. Which fields apply depends on Type.
type Node struct {
	Type string `yaml:"type"`

	Targets    []int `yaml:"targets,omitempty"`
	Candidates []int `yaml:"candidates,omitempty"`
	Result     *int  `yaml:"result,omitempty"`
	Value      *int  `yaml:"value,omitempty"`
	Min        *int  `yaml:"min,omitempty"`
	Max        *int  `yaml:"max,omitempty"`
	TargetMin  *int  `yaml:"target_min,omitempty"`
	TargetMax  *int  `yaml:"target_max,omitempty"`
	A          *int  `yaml:"a,omitempty"`
	B          *int  `yaml:"b,omitempty"`
	From       *int  `yaml:"from,omitempty"`
	To         *int  `yaml:"to,omitempty"`
	Z          *int  `yaml:"z,omitempty"`

	Origin []int `yaml:"origin,omitempty"`
	Extent []int `yaml:"extent,omitempty"`
	Center []int `yaml:"center,omitempty"`
	Height *int  `yaml:"height,omitempty"`
	Radius *int  `yaml:"radius,omitempty"`

	Percent *int   `yaml:"percent,omitempty"`
	Seed    *int64 `yaml:"seed,omitempty"`

	Rule  *Node  `yaml:"rule,omitempty"`
	Rules []Node `yaml:"rules,omitempty"`
}

// builder turns nodes into rules and hands out derived seeds to Random
// nodes in depth-first order.
type builder struct {
	seed    int64
	randoms int
}

func states(v []int) []automaton.State {
	out := make([]automaton.State, len(v))
	for i, s := range v {
		out[i] = automaton.State(s)
	}
	return out
}

func need(typ, field string, v *int) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%s: missing %q", typ, field)
	}
	return *v, nil
}

func needN(typ, field string, v []int, n int) ([]int, error) {
	if len(v) != n {
		return nil, fmt.Errorf("%s: %q needs %d entries, got %d", typ, field, n, len(v))
	}
	return v, nil
}

// fields collects several required integers, keeping the first error.
type fields struct {
	typ string
	err error
}

func (f *fields) num(name string, v *int) int {
	if f.err != nil {
		return 0
	}
	n, err := need(f.typ, name, v)
	f.err = err
	return n
}

func (f *fields) state(name string, v *int) automaton.State {
	return automaton.State(f.num(name, v))
}

func (f *fields) ints(name string, v []int, n int) []int {
	if f.err != nil {
		return make([]int, n)
	}
	out, err := needN(f.typ, name, v, n)
	if err != nil {
		f.err = err
		return make([]int, n)
	}
	return out
}

func (b *builder) children(typ string, nodes []Node) ([]automaton.Rule, error) {
	out := make([]automaton.Rule, 0, len(nodes))
	for i := range nodes {
		r, err := b.build(&nodes[i])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", typ, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (b *builder) child(typ string, n *Node, optional bool) (automaton.Rule, error) {
	if n == nil {
		if optional {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: missing \"rule\"", typ)
	}
	r, err := b.build(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", typ, err)
	}
	return r, nil
}

func (b *builder) build(n *Node) (automaton.Rule, error) {
	f := &fields{typ: n.Type}
	var rule automaton.Rule

	switch n.Type {
	case "count", "count_odd", "count_even":
		c := automaton.Count{
			Targets: states(n.Targets),
			Result:  f.state("result", n.Result),
			Min:     f.num("min", n.Min),
			Max:     f.num("max", n.Max),
		}
		switch n.Type {
		case "count_odd":
			rule = &automaton.CountOdd{Count: c}
		case "count_even":
			rule = &automaton.CountEven{Count: c}
		default:
			rule = &c
		}
	case "count_range":
		rule = &automaton.CountRange{
			TargetMin: f.state("target_min", n.TargetMin),
			TargetMax: f.state("target_max", n.TargetMax),
			Result:    f.state("result", n.Result),
			Min:       f.num("min", n.Min),
			Max:       f.num("max", n.Max),
		}
	case "max", "min", "add", "and", "or":
		kids, err := b.children(n.Type, n.Rules)
		if err != nil {
			return nil, err
		}
		switch n.Type {
		case "max":
			rule = &automaton.Max{Rules: kids}
		case "min":
			rule = &automaton.Min{Rules: kids}
		case "add":
			rule = &automaton.Add{Rules: kids}
		case "and":
			rule = &automaton.And{Rules: kids}
		default:
			rule = &automaton.Or{Rules: kids}
		}
	case "swap":
		inner, err := b.child(n.Type, n.Rule, true)
		if err != nil {
			return nil, err
		}
		rule = &automaton.Swap{A: f.state("a", n.A), B: f.state("b", n.B), Rule: inner}
	case "replace_range":
		rule = &automaton.ReplaceRange{
			Min:    f.state("min", n.Min),
			Max:    f.state("max", n.Max),
			Result: f.state("result", n.Result),
		}
	case "replace":
		rule = &automaton.Replace{From: f.state("from", n.From), To: f.state("to", n.To)}
	case "self":
		rule = &automaton.Self{Candidates: states(n.Candidates)}
	case "keep":
		inner, err := b.child(n.Type, n.Rule, true)
		if err != nil {
			return nil, err
		}
		rule = &automaton.Keep{Targets: states(n.Targets), Rule: inner}
	case "copy_lower":
		rule = automaton.CopyLowerFloor{}
	case "copy_upper":
		rule = automaton.CopyUpperFloor{}
	case "swap_floor":
		inner, err := b.child(n.Type, n.Rule, false)
		if err != nil {
			return nil, err
		}
		rule = &automaton.SwapFloor{A: f.num("a", n.A), B: f.num("b", n.B), Rule: inner}
	case "target_floor":
		inner, err := b.child(n.Type, n.Rule, false)
		if err != nil {
			return nil, err
		}
		rule = &automaton.TargetFloor{Z: f.num("z", n.Z), Rule: inner}
	case "box":
		o := f.ints("origin", n.Origin, 3)
		e := f.ints("extent", n.Extent, 3)
		rule = &automaton.BuildBox{
			Result: f.state("result", n.Result),
			X0:     o[0],
			Y0:     o[1],
			Z0:     o[2],
			DX:     e[0],
			DY:     e[1],
			DZ:     e[2],
		}
	case "cylinder":
		c := f.ints("center", n.Center, 2)
		rule = &automaton.BuildCylinder{
			Result: f.state("result", n.Result),
			CX:     c[0],
			CY:     c[1],
			Height: f.num("height", n.Height),
		}
	case "cylinder_radius", "cylinder_radius_hex":
		c := f.ints("center", n.Center, 2)
		result, height, radius := f.state("result", n.Result), f.num("height", n.Height), f.num("radius", n.Radius)
		if n.Type == "cylinder_radius_hex" {
			rule = &automaton.BuildCylinderRadiusHex{Result: result, CX: c[0], CY: c[1], Height: height, Radius: radius}
		} else {
			rule = &automaton.BuildCylinderRadius{Result: result, CX: c[0], CY: c[1], Height: height, Radius: radius}
		}
	case "const", "init":
		rule = &automaton.Const{Value: f.state("value", n.Value)}
	case "random":
		seed := core.DeriveSeed(b.seed, b.randoms)
		b.randoms++
		if n.Seed != nil {
			seed = *n.Seed
		}
		inner, err := b.child(n.Type, n.Rule, false)
		if err != nil {
			return nil, err
		}
		rule = &automaton.Random{
			Percent: f.num("percent", n.Percent),
			Rule:    inner,
			Source:  core.NewRNG(seed),
		}
	case "":
		return nil, fmt.Errorf("rule without \"type\"")
	default:
		return nil, fmt.Errorf("unknown rule type %q", n.Type)
	}

	if f.err != nil {
		return nil, f.err
	}
	if err := automaton.Check(rule); err != nil {
		return nil, err
	}
	return rule, nil
}
