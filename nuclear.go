// nuclear.go --  This file is part of goscf project.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the NAtoms x NAtoms matrix of pairwise Euclidean
// distances between nuclei. The matrix is sized to the actual atom count.
// The diagonal is zero.
func DistanceMatrix(coords *mat.Dense) *mat.SymDense {
	natoms, _ := coords.Dims()
	dist := mat.NewSymDense(natoms, nil)
	for i := 0; i < natoms; i++ {
		for j := i + 1; j < natoms; j++ {
			dx := coords.At(i, 0) - coords.At(j, 0)
			dy := coords.At(i, 1) - coords.At(j, 1)
			dz := coords.At(i, 2) - coords.At(j, 2)
			dist.SetSym(i, j, math.Sqrt(dx*dx+dy*dy+dz*dz))
		}
	}
	return dist
}

// NuclearRepulsion computes the classical Coulomb repulsion between the fixed
// nuclei, each pair counted once:
//
//	E_nn = sum_{i<j} Z_i Z_j / |R_i - R_j|
//
// Two distinct nuclei at the same position are an input-data error and fail
// with a DomainError rather than dividing through zero.
func NuclearRepulsion(charges []float64, coords *mat.Dense) (float64, error) {
	natoms, cols := coords.Dims()
	if natoms != len(charges) || cols != 3 {
		return 0, &ShapeError{"NuclearRepulsion",
			fmt.Sprintf("coordinates are %dx%d, want %dx3", natoms, cols, len(charges))}
	}
	dist := DistanceMatrix(coords)
	res := 0.0
	for i := 0; i < natoms; i++ {
		for j := i + 1; j < natoms; j++ {
			r := dist.At(i, j)
			if r <= 0 {
				return 0, &DomainError{"NuclearRepulsion",
					fmt.Sprintf("zero distance between atoms %d and %d", i, j)}
			}
			res += charges[i] * charges[j] / r
		}
	}
	return res, nil
}
