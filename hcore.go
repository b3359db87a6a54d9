// hcore.go --  This file is part of goscf project.
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

// CoreHamiltonian returns H = T + V, the one-electron part of the Fock
// operator. H is constant over the whole SCF run.
func CoreHamiltonian(t, v *mat.SymDense) (*mat.SymDense, error) {
	if t.SymmetricDim() != v.SymmetricDim() {
		return nil, &ShapeError{"CoreHamiltonian",
			fmt.Sprintf("kinetic is %d, nuclear-attraction is %d", t.SymmetricDim(), v.SymmetricDim())}
	}
	h := mat.NewSymDense(t.SymmetricDim(), nil)
	h.AddSym(t, v)
	return h, nil
}

// InitialDensity returns the n x n zero matrix, the sanctioned starting guess
// for the SCF fixed-point iteration. With a zero density the first Fock matrix
// equals the core Hamiltonian, so the first orbitals are the core-Hamiltonian
// eigenvectors.
func InitialDensity(n int) *mat.Dense {
	return mat.NewDense(n, n, nil)
}
