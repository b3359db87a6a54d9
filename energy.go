// energy.go --  This file is part of goscf project.
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

import "gonum.org/v1/gonum/mat"

// TotalEnergy evaluates the Hartree-Fock energy functional
//
//	E_tot = 0.5 * sum_{i,j} D[i,j]*(H[i,j] + F[i,j]) + E_nn.
//
// The half cancels the double counting of the two-electron interaction that
// averaging H and F introduces. Pure function of its arguments.
func TotalEnergy(f mat.Matrix, h mat.Matrix, d *mat.Dense, enuc float64) float64 {
	n, _ := d.Dims()
	res := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res += d.At(i, j) * (h.At(i, j) + f.At(i, j))
		}
	}
	return 0.5*res + enuc
}

// ElectronCount returns Tr[D*S], which equals the electron count 2*nocc for
// any density formed from S-orthonormal occupied orbitals. Useful as a sanity
// check on intermediate densities.
func ElectronCount(d *mat.Dense, s *mat.SymDense) float64 {
	n, _ := d.Dims()
	tr := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tr += d.At(i, j) * s.At(j, i)
		}
	}
	return tr
}
