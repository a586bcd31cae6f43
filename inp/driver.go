// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// DriverInput names one commanded input: the joint pair (Base, Node)
// whose angle is driven, and the commanded value in degrees. Both the
// triangulation compiler (package fem, which only cares about the pair)
// and the constraint builder (package mdl/solid, which also needs the
// angle) share this type.
type DriverInput struct {
	Base, Node int
	AngleDeg   float64
}
