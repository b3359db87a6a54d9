// fock.go --  This file is part of goscf project.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Fock forms the Fock matrix F = H + G(D) for the current density D:
//
//	G[i,j] = sum_{k,l} D[k,l]*( (ij|kl) - 0.5*(il|kj) )
//
// Coulomb contracts the ERI's third and fourth indices against D, exchange its
// second and fourth. This is the O(N^4) step that dominates an SCF iteration;
// rows of G are computed in parallel when more than one CPU is available.
// F is symmetric whenever D is symmetric and the tensor carries the index
// symmetries of real integrals.
func Fock(h *mat.SymDense, eri *ERI, d *mat.Dense) (*mat.Dense, error) {
	n := h.SymmetricDim()
	if eri.N() != n {
		return nil, &ShapeError{"Fock", fmt.Sprintf("ERI dimension %d, core Hamiltonian is %dx%d", eri.N(), n, n)}
	}
	if r, c := d.Dims(); r != n || c != n {
		return nil, &ShapeError{"Fock", fmt.Sprintf("density is %dx%d, core Hamiltonian is %dx%d", r, c, n, n)}
	}
	f := twoElectron(eri, d)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f.Set(i, j, f.At(i, j)+h.At(i, j))
		}
	}
	return f, nil
}

// twoElectron computes G(D). Each worker owns a disjoint band of rows of the
// output, so no cell is written by two goroutines.
func twoElectron(eri *ERI, d *mat.Dense) *mat.Dense {
	n := eri.N()
	g := mat.NewDense(n, n, nil)

	workers := runtime.GOMAXPROCS(-1)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		twoElectronRows(eri, d, g, 0, n)
		return g
	}

	var wg sync.WaitGroup
	band := n / workers
	for w := 0; w < workers; w++ {
		lo := w * band
		hi := lo + band
		if w == workers-1 {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			twoElectronRows(eri, d, g, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return g
}

func twoElectronRows(eri *ERI, d *mat.Dense, g *mat.Dense, lo, hi int) {
	n := eri.N()
	for i := lo; i < hi; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					coulomb := eri.At(i, j, k, l)
					exchange := eri.At(i, l, k, j)
					sum += d.At(k, l) * (coulomb - 0.5*exchange)
				}
			}
			g.Set(i, j, sum)
		}
	}
}
