// eigen.go --  This file is part of goscf project.
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
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Eigenvalues of S below this threshold mean a (numerically) linearly
// dependent basis.
const posDefTol = 1e-10

// sqrtInverse builds S^{-1/2} from the eigendecomposition of S,
//
//	S = U diag(w) U^T  =>  S^{-1/2} = U diag(1/sqrt(w)) U^T,
//
// failing with a LinAlgError carrying the smallest eigenvalue when S is not
// positive definite.
func sqrtInverse(s *mat.SymDense) (*mat.Dense, error) {
	n := s.SymmetricDim()
	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(s, true); !ok {
		return nil, &LinAlgError{"sqrtInverse", "overlap eigendecomposition failed", math.NaN()}
	}
	vals := eigsym.Values(nil)
	if vals[0] < posDefTol {
		return nil, &LinAlgError{"sqrtInverse", "overlap matrix not positive definite", vals[0]}
	}
	var u mat.Dense
	eigsym.VectorsTo(&u)
	for i := range vals {
		vals[i] = 1.0 / math.Sqrt(vals[i])
	}
	var res mat.Dense
	res.Mul(&u, mat.NewDiagDense(n, vals))
	res.Mul(&res, u.T())
	return &res, nil
}

// Eigensolve solves the generalized symmetric eigenproblem
//
//	F C = S C diag(eps)
//
// by symmetric orthogonalization: with A = S^{-1/2} the problem becomes the
// ordinary symmetric one (A F A) C' = C' diag(eps), and C = A C'. The
// returned energies are in ascending order and the columns of C are
// S-orthonormal, C^T S C = I. Because the transformed problem is real
// symmetric, every eigenvalue is real by construction; no complex residue can
// arise that would need truncating.
//
// A non-positive-definite S fails with a LinAlgError.
func Eigensolve(f *mat.Dense, s *mat.SymDense) ([]float64, *mat.Dense, error) {
	n := s.SymmetricDim()
	if r, c := f.Dims(); r != n || c != n {
		return nil, nil, &ShapeError{"Eigensolve", "Fock and overlap dimensions differ"}
	}
	a, err := sqrtInverse(s)
	if err != nil {
		return nil, nil, err
	}

	var fp mat.Dense
	fp.Mul(a, f)
	fp.Mul(&fp, a)
	fsym := mat.NewSymDense(n, fp.RawMatrix().Data)

	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(fsym, true); !ok {
		return nil, nil, &LinAlgError{"Eigensolve", "Fock eigendecomposition failed", math.NaN()}
	}
	energies := eigsym.Values(nil)
	var ev mat.Dense
	eigsym.VectorsTo(&ev)

	var c mat.Dense
	c.Mul(a, &ev)

	// EigenSym returns ascending eigenvalues, but the density former depends
	// on that order, so it is re-established rather than assumed.
	if !slices.IsSorted(energies) {
		sortEigenpairs(energies, &c)
	}
	return energies, &c, nil
}

// sortEigenpairs reorders the energies ascending and permutes the columns of
// c to match.
func sortEigenpairs(energies []float64, c *mat.Dense) {
	n := len(energies)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case energies[a] < energies[b]:
			return -1
		case energies[a] > energies[b]:
			return 1
		}
		return 0
	})
	sorted := make([]float64, n)
	perm := mat.NewDense(n, n, nil)
	for to, from := range order {
		sorted[to] = energies[from]
		for i := 0; i < n; i++ {
			perm.Set(i, to, c.At(i, from))
		}
	}
	copy(energies, sorted)
	c.Copy(perm)
}
