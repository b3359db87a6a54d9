// eigen_test.go --  This file is part of goscf project.
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
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

func identitySym(n int) *mat.SymDense {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, 1)
	}
	return s
}

func TestEigensolveIdentityMetric(t *testing.T) {
	// With S = I the generalized problem is the ordinary one: a diagonal F
	// has its diagonal as eigenvalues, ascending.
	f := mat.NewDense(2, 2, []float64{-0.5, 0, 0, -1.0})
	energies, c, err := Eigensolve(f, identitySym(2))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(energies[0]+1.0) > 1e-12 || math.Abs(energies[1]+0.5) > 1e-12 {
		t.Errorf("energies = %v, want [-1, -0.5]", energies)
	}
	// The lowest orbital is e_2 up to sign.
	if math.Abs(math.Abs(c.At(1, 0))-1) > 1e-12 || math.Abs(c.At(0, 0)) > 1e-12 {
		t.Errorf("lowest orbital = (%v, %v), want (0, +-1)", c.At(0, 0), c.At(1, 0))
	}
}

func TestEigensolveGeneralized(t *testing.T) {
	// Non-orthogonal metric: check the defining relation F C = S C diag(e)
	// and the S-orthonormality of the columns.
	s := mat.NewSymDense(2, flatten([][]float64{
		{1.0, 0.45},
		{0.45, 1.0},
	}))
	f := mat.NewDense(2, 2, []float64{-1.2, -0.9, -0.9, -0.7})

	energies, c, err := Eigensolve(f, s)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.IsSorted(energies) {
		t.Fatalf("energies not ascending: %v", energies)
	}

	var lhs, rhs mat.Dense
	lhs.Mul(f, c)
	rhs.Mul(s, c)
	rhs.Mul(&rhs, mat.NewDiagDense(2, energies))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(lhs.At(i, j)-rhs.At(i, j)) > 1e-10 {
				t.Fatalf("F*C != S*C*diag(e) at (%d,%d): %v vs %v", i, j, lhs.At(i, j), rhs.At(i, j))
			}
		}
	}

	var ortho mat.Dense
	ortho.Mul(c.T(), s)
	ortho.Mul(&ortho, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(ortho.At(i, j)-want) > 1e-10 {
				t.Fatalf("C^T S C not identity:\n%s", FormatMatrix(&ortho))
			}
		}
	}
}

func TestEigensolveNonPositiveDefinite(t *testing.T) {
	// Two identical basis functions: S is singular, the basis linearly
	// dependent.
	s := mat.NewSymDense(2, flatten([][]float64{
		{1, 1},
		{1, 1},
	}))
	f := mat.NewDense(2, 2, []float64{-1, 0, 0, -1})
	_, _, err := Eigensolve(f, s)
	var laerr *LinAlgError
	if !errors.As(err, &laerr) {
		t.Fatalf("singular overlap: got %v, want a LinAlgError", err)
	}
	if laerr.MinEigenvalue > posDefTol {
		t.Errorf("diagnostic eigenvalue %v, want below %v", laerr.MinEigenvalue, posDefTol)
	}
}

func TestSortEigenpairs(t *testing.T) {
	energies := []float64{0.5, -1.0, -0.2}
	c := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	sortEigenpairs(energies, c)
	if !slices.IsSorted(energies) {
		t.Fatalf("energies not ascending after sort: %v", energies)
	}
	// Column of the former lowest value -1.0 (old column 1) now comes first.
	wantFirst := []float64{2, 5, 8}
	for i, w := range wantFirst {
		if c.At(i, 0) != w {
			t.Errorf("column permutation wrong: C[%d,0] = %v, want %v", i, c.At(i, 0), w)
		}
	}
}
