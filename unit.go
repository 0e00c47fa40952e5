// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"math/big"
	"sync"

	"github.com/shopspring/decimal"

	"superqalc/enumerable"
)

// UnitDef declares a unit in the source table. Factors are exact decimal
// literals so constants like the electron-volt never pass through float64.
type UnitDef struct {
	name        string
	description string
	factor      decimal.Decimal
	dim         Dimension
}

// Unit is the runtime form: the factor converts a numeric value in this
// unit to the SI base numeric of its dimension.
type Unit struct {
	name   string
	factor *big.Float
	dim    Dimension
}

// Registry is the immutable name -> Unit table. names preserves the table's
// insertion order; map iteration is randomized and "first match" semantics
// for conversion and pretty-printing need a stable order.
type Registry struct {
	table map[string]*Unit
	names []string
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dim(m, kg, s, a, k, mol, cd int) Dimension {
	return Dimension{m, kg, s, a, k, mol, cd}
}

var unitDefs = []UnitDef{
	// SI base
	{name: "m", description: "meters", factor: dec("1"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "kg", description: "kilograms", factor: dec("1"), dim: dim(0, 1, 0, 0, 0, 0, 0)},
	{name: "s", description: "seconds", factor: dec("1"), dim: dim(0, 0, 1, 0, 0, 0, 0)},
	{name: "A", description: "amperes", factor: dec("1"), dim: dim(0, 0, 0, 1, 0, 0, 0)},
	{name: "K", description: "kelvin", factor: dec("1"), dim: dim(0, 0, 0, 0, 1, 0, 0)},
	{name: "mol", description: "moles", factor: dec("1"), dim: dim(0, 0, 0, 0, 0, 1, 0)},
	{name: "cd", description: "candelas", factor: dec("1"), dim: dim(0, 0, 0, 0, 0, 0, 1)},

	{name: "", description: "dimensionless", factor: dec("1"), dim: dim(0, 0, 0, 0, 0, 0, 0)},

	// prefixed lengths
	{name: "cm", description: "centimeters", factor: dec("0.01"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "mm", description: "millimeters", factor: dec("0.001"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "km", description: "kilometers", factor: dec("1000"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "um", description: "micrometers", factor: dec("0.000001"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "nm", description: "nanometers", factor: dec("0.000000001"), dim: dim(1, 0, 0, 0, 0, 0, 0)},

	// time
	{name: "min", description: "minutes", factor: dec("60"), dim: dim(0, 0, 1, 0, 0, 0, 0)},
	{name: "h", description: "hours", factor: dec("3600"), dim: dim(0, 0, 1, 0, 0, 0, 0)},
	{name: "day", description: "days", factor: dec("86400"), dim: dim(0, 0, 1, 0, 0, 0, 0)},

	// derived SI
	{name: "N", description: "newtons", factor: dec("1"), dim: dim(1, 1, -2, 0, 0, 0, 0)},
	{name: "J", description: "joules", factor: dec("1"), dim: dim(2, 1, -2, 0, 0, 0, 0)},
	{name: "Pa", description: "pascals", factor: dec("1"), dim: dim(-1, 1, -2, 0, 0, 0, 0)},
	{name: "W", description: "watts", factor: dec("1"), dim: dim(2, 1, -3, 0, 0, 0, 0)},
	{name: "Hz", description: "hertz", factor: dec("1"), dim: dim(0, 0, -1, 0, 0, 0, 0)},

	// energy
	{name: "eV", description: "electron-volts", factor: dec("1.602176634e-19"), dim: dim(2, 1, -2, 0, 0, 0, 0)},

	// pressure
	{name: "bar", description: "bars", factor: dec("100000"), dim: dim(-1, 1, -2, 0, 0, 0, 0)},
	{name: "atm", description: "atmospheres", factor: dec("101325"), dim: dim(-1, 1, -2, 0, 0, 0, 0)},

	// imperial length
	{name: "in", description: "inches", factor: dec("0.0254"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "ft", description: "feet", factor: dec("0.3048"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "yd", description: "yards", factor: dec("0.9144"), dim: dim(1, 0, 0, 0, 0, 0, 0)},
	{name: "mi", description: "miles", factor: dec("1609.344"), dim: dim(1, 0, 0, 0, 0, 0, 0)},

	// imperial mass
	{name: "lb", description: "pounds", factor: dec("0.45359237"), dim: dim(0, 1, 0, 0, 0, 0, 0)},
	{name: "oz", description: "ounces", factor: dec("0.028349523125"), dim: dim(0, 1, 0, 0, 0, 0, 0)},

	// temperature: multiplicative placeholder only, no affine offset
	{name: "degC", description: "celsius (kelvin-mapped)", factor: dec("1"), dim: dim(0, 0, 0, 0, 1, 0, 0)},

	// angle (dimensionless)
	{name: "rad", description: "radians", factor: dec("1"), dim: dim(0, 0, 0, 0, 0, 0, 0)},
	{name: "deg", description: "degrees", factor: dec("0.01745329251994329577"), dim: dim(0, 0, 0, 0, 0, 0, 0)},

	// volume
	{name: "L", description: "liters", factor: dec("0.001"), dim: dim(3, 0, 0, 0, 0, 0, 0)},
}

var (
	unitRegistry     *Registry
	unitRegistryOnce sync.Once
)

// units returns the process-wide registry, built on first use at the
// configured float precision and immutable afterwards.
func units() *Registry {
	unitRegistryOnce.Do(func() {
		r := &Registry{table: make(map[string]*Unit, len(unitDefs))}
		for _, def := range unitDefs {
			f, ok := newFloat().SetString(def.factor.String())
			if !ok || f.Sign() <= 0 {
				panic("bad unit factor for " + def.name)
			}
			r.table[def.name] = &Unit{name: def.name, factor: f, dim: def.dim}
			r.names = append(r.names, def.name)
		}
		unitRegistry = r
	})
	return unitRegistry
}

// lookup resolves a unit name. On an exact miss, leading characters are
// stripped one at a time and retried, so unknown prefixed forms like "xm"
// resolve to "m". The stripped prefix contributes no magnitude; "Mm" is
// plain "m" with factor 1.
func (r *Registry) lookup(name string) *Unit {
	if u, ok := r.table[name]; ok {
		return u
	}
	for pos := 1; pos < len(name); pos++ {
		if u, ok := r.table[name[pos:]]; ok {
			return u
		}
	}
	return nil
}

// withDim returns all units sharing a dimension, in table insertion order.
func (r *Registry) withDim(d Dimension) []*Unit {
	ordered := enumerable.Map(r.names, func(name string) *Unit { return r.table[name] })
	return enumerable.Filter(ordered, func(u *Unit) bool { return u.dim == d })
}
