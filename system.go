// system.go --  This file is part of goscf project.
//
//	goscf is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package scf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// System bundles everything an SCF run needs from the integral and geometry
// provider. All fields are treated as immutable for the duration of a run;
// Solve never writes to them.
type System struct {
	Charges []float64  // nuclear charges, one per atom
	Coords  *mat.Dense // NAtoms x 3 Cartesian positions, Bohr

	NOcc int // number of doubly occupied orbitals, electron count / 2

	S, T, V *mat.SymDense // overlap, kinetic and nuclear-attraction matrices
	ERI     *ERI          // two-electron repulsion integrals
}

// NAtoms returns the number of nuclei.
func (sys *System) NAtoms() int { return len(sys.Charges) }

// NBasis returns the number of atomic orbitals N.
func (sys *System) NBasis() int {
	if sys.S == nil {
		return 0
	}
	return sys.S.SymmetricDim()
}

// Validate checks every shape and domain constraint of the bundle. It is run
// by Solve before any computation; direct users of the component functions
// can call it themselves.
func (sys *System) Validate() error {
	if len(sys.Charges) == 0 {
		return &DomainError{"Validate", "no atoms"}
	}
	for i, q := range sys.Charges {
		if q < 0 {
			return &DomainError{"Validate", fmt.Sprintf("negative charge %g on atom %d", q, i)}
		}
	}
	if sys.Coords == nil {
		return &ShapeError{"Validate", "nil coordinates"}
	}
	rows, cols := sys.Coords.Dims()
	if rows != len(sys.Charges) || cols != 3 {
		return &ShapeError{"Validate",
			fmt.Sprintf("coordinates are %dx%d, want %dx3", rows, cols, len(sys.Charges))}
	}
	if sys.S == nil || sys.T == nil || sys.V == nil {
		return &ShapeError{"Validate", "nil integral matrix"}
	}
	n := sys.S.SymmetricDim()
	if n == 0 {
		return &ShapeError{"Validate", "empty overlap matrix"}
	}
	if d := sys.T.SymmetricDim(); d != n {
		return &ShapeError{"Validate", fmt.Sprintf("kinetic matrix is %dx%d, overlap is %dx%d", d, d, n, n)}
	}
	if d := sys.V.SymmetricDim(); d != n {
		return &ShapeError{"Validate", fmt.Sprintf("nuclear-attraction matrix is %dx%d, overlap is %dx%d", d, d, n, n)}
	}
	if sys.ERI == nil {
		return &ShapeError{"Validate", "nil ERI tensor"}
	}
	if sys.ERI.N() != n {
		return &ShapeError{"Validate", fmt.Sprintf("ERI tensor dimension %d, overlap is %dx%d", sys.ERI.N(), n, n)}
	}
	if sys.NOcc < 0 || sys.NOcc > n {
		return &DomainError{"Validate", fmt.Sprintf("occupation count %d outside [0, %d]", sys.NOcc, n)}
	}
	return nil
}
