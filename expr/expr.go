// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package expr defines the symbolic expression tree and its algebraic
// constructors.
//
// An expression is a tree over a closed set of node kinds: integer
// constants, the single free variable x, n-ary sums and products, unary
// negation, exponentiation, and a few transcendental functions. Every
// child is exclusively owned by its parent: constructors take ownership
// of their operands and transformations never alias a node from two
// parents. Callers that want to reuse a subtree must Clone it.
package expr

// Kind identifies the variant of an expression node. The declaration
// order defines the rank used by the canonical ordering.
type Kind int

const (
	// ConstKind is an integer constant.
	ConstKind Kind = iota
	// VarKind is the free variable.
	VarKind
	// SumKind is an n-ary addition.
	SumKind
	// ProdKind is an n-ary multiplication.
	ProdKind
	// NegKind is a unary negation.
	NegKind
	// PowKind is exponentiation.
	PowKind
	// LnKind is the natural logarithm.
	LnKind
	// SinKind is the sine function.
	SinKind
	// CosKind is the cosine function.
	CosKind
	// ArcsinKind is the inverse sine function.
	ArcsinKind
	// ArccosKind is the inverse cosine function.
	ArccosKind
	// ArctanKind is the inverse tangent function.
	ArctanKind
)

var kindNames = [...]string{
	ConstKind:  "Const",
	VarKind:    "Var",
	SumKind:    "Sum",
	ProdKind:   "Prod",
	NegKind:    "Neg",
	PowKind:    "Pow",
	LnKind:     "Ln",
	SinKind:    "Sin",
	CosKind:    "Cos",
	ArcsinKind: "Arcsin",
	ArccosKind: "Arccos",
	ArctanKind: "Arctan",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}
	return kindNames[k]
}

// Expr is a node in an expression tree.
//
// The set of implementations is closed: only the node types declared in
// this package can implement the interface. Algorithms dispatch on the
// concrete type and treat any other implementation as an internal error.
type Expr interface {
	// Kind returns the variant of the node.
	Kind() Kind
	// Clone returns a deep copy of the node sharing no children with
	// the receiver.
	Clone() Expr
	// String returns a debug representation of the tree. Two trees have
	// the same representation iff they are structurally equal.
	String() string

	node()
}

type (
	// Const is a literal integer value.
	Const struct {
		Val int64
	}

	// Var is the single free variable.
	Var struct{}

	// Sum is an n-ary addition over an ordered sequence of terms.
	Sum struct {
		Terms []Expr
	}

	// Prod is an n-ary multiplication over an ordered sequence of factors.
	Prod struct {
		Factors []Expr
	}

	// Neg is the negation of its operand.
	Neg struct {
		X Expr
	}

	// Pow raises Base to Exponent.
	Pow struct {
		Base     Expr
		Exponent Expr
	}

	// Ln is the natural logarithm of its operand.
	Ln struct {
		X Expr
	}

	// Sin is the sine of its operand.
	Sin struct {
		X Expr
	}

	// Cos is the cosine of its operand.
	Cos struct {
		X Expr
	}

	// Arcsin is the inverse sine of its operand.
	Arcsin struct {
		X Expr
	}

	// Arccos is the inverse cosine of its operand.
	Arccos struct {
		X Expr
	}

	// Arctan is the inverse tangent of its operand.
	Arctan struct {
		X Expr
	}
)

func (*Const) node()  {}
func (*Var) node()    {}
func (*Sum) node()    {}
func (*Prod) node()   {}
func (*Neg) node()    {}
func (*Pow) node()    {}
func (*Ln) node()     {}
func (*Sin) node()    {}
func (*Cos) node()    {}
func (*Arcsin) node() {}
func (*Arccos) node() {}
func (*Arctan) node() {}

// Kind returns ConstKind.
func (*Const) Kind() Kind { return ConstKind }

// Kind returns VarKind.
func (*Var) Kind() Kind { return VarKind }

// Kind returns SumKind.
func (*Sum) Kind() Kind { return SumKind }

// Kind returns ProdKind.
func (*Prod) Kind() Kind { return ProdKind }

// Kind returns NegKind.
func (*Neg) Kind() Kind { return NegKind }

// Kind returns PowKind.
func (*Pow) Kind() Kind { return PowKind }

// Kind returns LnKind.
func (*Ln) Kind() Kind { return LnKind }

// Kind returns SinKind.
func (*Sin) Kind() Kind { return SinKind }

// Kind returns CosKind.
func (*Cos) Kind() Kind { return CosKind }

// Kind returns ArcsinKind.
func (*Arcsin) Kind() Kind { return ArcsinKind }

// Kind returns ArccosKind.
func (*Arccos) Kind() Kind { return ArccosKind }

// Kind returns ArctanKind.
func (*Arctan) Kind() Kind { return ArctanKind }

func cloneAll(xs []Expr) []Expr {
	cs := make([]Expr, len(xs))
	for i, x := range xs {
		cs[i] = x.Clone()
	}
	return cs
}

// Clone returns a copy of the constant.
func (e *Const) Clone() Expr { return &Const{Val: e.Val} }

// Clone returns a new variable node.
func (e *Var) Clone() Expr { return &Var{} }

// Clone returns a deep copy of the sum.
func (e *Sum) Clone() Expr { return &Sum{Terms: cloneAll(e.Terms)} }

// Clone returns a deep copy of the product.
func (e *Prod) Clone() Expr { return &Prod{Factors: cloneAll(e.Factors)} }

// Clone returns a deep copy of the negation.
func (e *Neg) Clone() Expr { return &Neg{X: e.X.Clone()} }

// Clone returns a deep copy of the power.
func (e *Pow) Clone() Expr {
	return &Pow{Base: e.Base.Clone(), Exponent: e.Exponent.Clone()}
}

// Clone returns a deep copy of the logarithm.
func (e *Ln) Clone() Expr { return &Ln{X: e.X.Clone()} }

// Clone returns a deep copy of the sine.
func (e *Sin) Clone() Expr { return &Sin{X: e.X.Clone()} }

// Clone returns a deep copy of the cosine.
func (e *Cos) Clone() Expr { return &Cos{X: e.X.Clone()} }

// Clone returns a deep copy of the inverse sine.
func (e *Arcsin) Clone() Expr { return &Arcsin{X: e.X.Clone()} }

// Clone returns a deep copy of the inverse cosine.
func (e *Arccos) Clone() Expr { return &Arccos{X: e.X.Clone()} }

// Clone returns a deep copy of the inverse tangent.
func (e *Arctan) Clone() Expr { return &Arctan{X: e.X.Clone()} }
