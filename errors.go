// errors.go --  This file is part of goscf project.
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

// ShapeError reports matrix or tensor dimensions that do not agree with each
// other or with the basis-set size. It is always fatal: nothing is retried.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return "goscf: " + e.Op + ": shape mismatch: " + e.Msg
}

// DomainError reports input values outside their valid domain, such as a
// negative occupation count or a zero distance between distinct nuclei.
// It is raised before any computation on the offending data begins.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return "goscf: " + e.Op + ": " + e.Msg
}

// LinAlgError reports a failed matrix decomposition. For a non-positive-definite
// overlap matrix MinEigenvalue carries the smallest eigenvalue found, as a
// diagnostic for linearly dependent basis sets.
type LinAlgError struct {
	Op            string
	Msg           string
	MinEigenvalue float64
}

func (e *LinAlgError) Error() string {
	return fmt.Sprintf("goscf: %s: %s (min eigenvalue %.3e)", e.Op, e.Msg, e.MinEigenvalue)
}

// ConvergenceError reports an SCF run that hit its iteration bound before
// meeting the convergence tolerance. Solve returns it alongside a full Result
// holding the last energy and density, so the caller can inspect the state and
// decide whether to restart with looser tolerances or a different guess.
type ConvergenceError struct {
	Iterations int
	Energy     float64
	DeltaE     float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("goscf: SCF not converged after %d iterations (E = %.10f a.u., dE = %.3e)",
		e.Iterations, e.Energy, e.DeltaE)
}
