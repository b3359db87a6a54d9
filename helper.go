// helper.go --  This file is part of goscf project.
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

// FormatMatrix returns a multi-line fixed-width rendering of m, handy for
// trace logs and test failure messages.
func FormatMatrix(m mat.Matrix) string {
	fa := mat.Formatted(m, mat.Prefix("    "), mat.Squeeze())
	return fmt.Sprintf("    %.8f", fa)
}

// flatten lays a square [][]float64 out row-major, the form gonum's dense
// constructors take.
func flatten(arr [][]float64) []float64 {
	dim := len(arr)
	res := make([]float64, dim*dim)
	for i := range arr {
		copy(res[i*dim:(i+1)*dim], arr[i])
	}
	return res
}
