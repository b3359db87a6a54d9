// nuclear_test.go --  This file is part of goscf project.
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

	"gonum.org/v1/gonum/mat"
)

func TestNuclearRepulsionUnitDistance(t *testing.T) {
	coords := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		1, 0, 0,
	})
	enuc, err := NuclearRepulsion([]float64{1, 1}, coords)
	if err != nil {
		t.Fatal(err)
	}
	if enuc != 1.0 {
		t.Errorf("two unit charges at unit distance: got E_nn = %v, want exactly 1.0", enuc)
	}
}

func TestNuclearRepulsionPairSum(t *testing.T) {
	// Three charges on a line at 0, 1 and 3: pairs (0,1), (0,3) and (1,3)
	// at distances 1, 3 and 2.
	coords := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		3, 0, 0,
	})
	charges := []float64{1, 2, 3}
	want := 1.0*2.0/1.0 + 1.0*3.0/3.0 + 2.0*3.0/2.0
	enuc, err := NuclearRepulsion(charges, coords)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(enuc-want) > 1e-14 {
		t.Errorf("got E_nn = %v, want %v", enuc, want)
	}
}

func TestNuclearRepulsionZeroDistance(t *testing.T) {
	coords := mat.NewDense(2, 3, []float64{
		0.5, 0.5, 0.5,
		0.5, 0.5, 0.5,
	})
	_, err := NuclearRepulsion([]float64{1, 1}, coords)
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("coincident nuclei: got %v, want a DomainError", err)
	}
}

func TestNuclearRepulsionShape(t *testing.T) {
	coords := mat.NewDense(2, 3, nil)
	_, err := NuclearRepulsion([]float64{1, 1, 1}, coords)
	var serr *ShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("charge/coordinate count mismatch: got %v, want a ShapeError", err)
	}
}

func TestDistanceMatrixSizedToAtomCount(t *testing.T) {
	// Four atoms: the matrix must be 4x4, not any fixed size.
	coords := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		3, 4, 0,
		0, 0, 2,
		3, 4, 2,
	})
	dist := DistanceMatrix(coords)
	if d := dist.SymmetricDim(); d != 4 {
		t.Fatalf("distance matrix dimension %d, want 4", d)
	}
	for i := 0; i < 4; i++ {
		if dist.At(i, i) != 0 {
			t.Errorf("nonzero diagonal element %v at %d", dist.At(i, i), i)
		}
	}
	if got := dist.At(0, 1); math.Abs(got-5) > 1e-14 {
		t.Errorf("d(0,1) = %v, want 5", got)
	}
	if got := dist.At(1, 3); math.Abs(got-2) > 1e-14 {
		t.Errorf("d(1,3) = %v, want 2", got)
	}
	if dist.At(0, 3) != dist.At(3, 0) {
		t.Error("distance matrix not symmetric")
	}
}
