// eri.go --  This file is part of goscf project.
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

import "fmt"

// ERI holds the two-electron repulsion integrals (ij|kl) as a dense N^4
// tensor over a flat backing slice. Chemist notation: the first index pair
// belongs to electron one, the second to electron two. The tensor is treated
// as read-only during an SCF run; the eight-fold permutational symmetry of
// real integrals is expected of the data but not exploited by the Fock build.
type ERI struct {
	n    int
	data []float64
}

// NewERI returns a zero-filled tensor for n basis functions.
func NewERI(n int) *ERI {
	if n <= 0 {
		panic(fmt.Sprintf("goscf: non-positive ERI dimension %d", n))
	}
	return &ERI{n: n, data: make([]float64, n*n*n*n)}
}

// NewERIFrom wraps an existing row-major flat slice of length n^4.
func NewERIFrom(n int, data []float64) (*ERI, error) {
	if len(data) != n*n*n*n {
		return nil, &ShapeError{"NewERIFrom", fmt.Sprintf("want %d elements for n = %d, got %d", n*n*n*n, n, len(data))}
	}
	return &ERI{n: n, data: data}, nil
}

// N returns the number of basis functions.
func (t *ERI) N() int { return t.n }

func (t *ERI) idx(i, j, k, l int) int {
	return ((i*t.n+j)*t.n+k)*t.n + l
}

// At returns (ij|kl).
func (t *ERI) At(i, j, k, l int) float64 {
	return t.data[t.idx(i, j, k, l)]
}

// Set writes a single tensor element, ignoring symmetry.
func (t *ERI) Set(i, j, k, l int, v float64) {
	t.data[t.idx(i, j, k, l)] = v
}

// SetChem writes (ij|kl) together with its seven permutationally equivalent
// elements: i<->j, k<->l and the pair swap (ij)<->(kl). Convenient when
// filling the tensor from a unique-integral list.
func (t *ERI) SetChem(i, j, k, l int, v float64) {
	t.Set(i, j, k, l, v)
	t.Set(j, i, k, l, v)
	t.Set(i, j, l, k, v)
	t.Set(j, i, l, k, v)
	t.Set(k, l, i, j, v)
	t.Set(l, k, i, j, v)
	t.Set(k, l, j, i, v)
	t.Set(l, k, j, i, v)
}
