// diis.go --  This file is part of goscf project.
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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// diis accumulates Fock matrices and their orbital-gradient residuals and
// extrapolates the next Fock matrix as the linear combination that minimizes
// the residual norm (Pulay's direct inversion in the iterative subspace).
// The residual for a Fock/density pair is
//
//	r = A (F D S - S D F) A,  A = S^{-1/2},
//
// which vanishes exactly at self-consistency. History is bounded: the oldest
// pair is dropped once depth is exceeded, keeping the B matrix well
// conditioned.
type diis struct {
	depth  int
	s      *mat.Dense // dense copy of the overlap
	a      *mat.Dense // S^{-1/2}
	focks  []*mat.Dense
	resids []*mat.Dense
}

func newDIIS(s *mat.SymDense, depth int) (*diis, error) {
	a, err := sqrtInverse(s)
	if err != nil {
		return nil, err
	}
	return &diis{depth: depth, s: mat.DenseCopyOf(s), a: a}, nil
}

// push records a Fock/density pair and its residual.
func (x *diis) push(f, d *mat.Dense) {
	n, _ := f.Dims()
	term1 := mat.NewDense(n, n, nil)
	term2 := mat.NewDense(n, n, nil)
	term1.Mul(f, d)
	term1.Mul(term1, x.s)
	term2.Mul(x.s, d)
	term2.Mul(term2, f)
	term1.Sub(term1, term2)
	term1.Mul(x.a, term1)
	term1.Mul(term1, x.a)

	x.focks = append(x.focks, mat.DenseCopyOf(f))
	x.resids = append(x.resids, term1)
	if len(x.focks) > x.depth {
		x.focks = x.focks[1:]
		x.resids = x.resids[1:]
	}
}

// rms returns the root-mean-square of the most recent residual, the
// density-side convergence signal.
func (x *diis) rms() float64 {
	if len(x.resids) == 0 {
		return math.Inf(1)
	}
	r := mat.DenseCopyOf(x.resids[len(x.resids)-1])
	r.MulElem(r, r)
	return math.Sqrt(stat.Mean(r.RawMatrix().Data, nil))
}

// extrapolate solves the constrained least-squares system
//
//	[ B  -1 ] [ c      ]   [  0 ]
//	[ -1  0 ] [ lambda ] = [ -1 ],   B[i,j] = <r_i, r_j>,
//
// and returns sum_i c_i F_i. With fewer than two stored pairs, or when the B
// system is singular, the latest Fock matrix is returned unchanged.
func (x *diis) extrapolate() *mat.Dense {
	m := len(x.focks)
	if m == 0 {
		return nil
	}
	latest := mat.DenseCopyOf(x.focks[m-1])
	if m < 2 {
		return latest
	}
	n, _ := latest.Dims()

	b := mat.NewDense(m+1, m+1, nil)
	for i := 0; i < m; i++ {
		b.Set(i, m, -1)
		b.Set(m, i, -1)
	}
	prod := mat.NewDense(n, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			prod.MulElem(x.resids[i], x.resids[j])
			b.Set(i, j, mat.Sum(prod))
		}
	}

	rhs := mat.NewVecDense(m+1, nil)
	rhs.SetVec(m, -1)

	var lu mat.LU
	lu.Factorize(b)
	var coefs mat.VecDense
	if err := lu.SolveVecTo(&coefs, false, rhs); err != nil {
		return latest
	}

	f := mat.NewDense(n, n, nil)
	part := mat.NewDense(n, n, nil)
	for j := 0; j < m; j++ {
		part.Scale(coefs.AtVec(j), x.focks[j])
		f.Add(f, part)
	}
	return f
}
