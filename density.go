// density.go --  This file is part of goscf project.
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

// Density rebuilds the density matrix from the orbital coefficients,
//
//	D[i,j] = 2 * sum_{k < nocc} C[i,k]*C[j,k],
//
// the closed-shell restricted form: each of the nocc lowest orbitals holds
// two electrons, so only the first nocc columns of C participate. C's columns
// must be ordered by ascending orbital energy, which Eigensolve guarantees.
func Density(c *mat.Dense, nocc int) (*mat.Dense, error) {
	n, cols := c.Dims()
	if n != cols {
		return nil, &ShapeError{"Density", fmt.Sprintf("coefficient matrix is %dx%d, want square", n, cols)}
	}
	if nocc < 0 || nocc > n {
		return nil, &DomainError{"Density", fmt.Sprintf("occupation count %d outside [0, %d]", nocc, n)}
	}
	d := mat.NewDense(n, n, nil)
	const occ = 2.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < nocc; k++ {
				sum += c.At(i, k) * c.At(j, k)
			}
			d.Set(i, j, occ*sum)
		}
	}
	return d, nil
}
