// doc.go --  This file is part of goscf project.
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

// Package scf computes the restricted Hartree-Fock self-consistent-field
// ground-state energy of a closed-shell molecule from precomputed basis-set
// integrals.
//
// The package does no integral evaluation of its own. The caller supplies a
// System: nuclear charges and coordinates, the overlap (S), kinetic (T) and
// nuclear-attraction (V) one-electron matrices, the four-index
// electron-repulsion tensor, and the number of doubly occupied orbitals.
// Solve then iterates the SCF fixed point
//
//	F = H + G(D)  ->  F C = S C diag(eps)  ->  D' = 2 C_occ C_occ^T
//
// until the total energy (and optionally the density) stops changing, and
// returns the converged energy together with the final density, orbital
// coefficients and orbital energies. DIIS extrapolation of the Fock matrix
// can be switched on through the Config to accelerate convergence.
//
// All matrices are gonum types; energies are in Hartree atomic units and the
// coordinates are expected in Bohr.
package scf
