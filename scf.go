// scf.go --  This file is part of goscf project.
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
	"io"
	"log"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Status is the terminal state of an SCF run.
type Status int

const (
	Initializing Status = iota
	Iterating
	Converged
	MaxIterExceeded
)

func (s Status) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterExceeded:
		return "max iterations exceeded"
	}
	return "unknown"
}

// Defaults applied by Solve when the corresponding Config field is zero.
const (
	DefaultEnergyTol = 1e-6
	DefaultMaxIter   = 50
	defaultDIISDepth = 8
)

// Config is the orchestration surface of an SCF run.
type Config struct {
	// EnergyTol is the convergence threshold on |E' - E| between successive
	// iterations. Zero means DefaultEnergyTol; negative is a DomainError.
	EnergyTol float64

	// DensityTol, when positive, additionally requires the Frobenius norm of
	// D' - D to fall below it before the run counts as converged. Zero
	// disables the density criterion; negative is a DomainError.
	DensityTol float64

	// MaxIter bounds the iteration count. Zero means DefaultMaxIter;
	// negative is a DomainError.
	MaxIter int

	// DIIS switches on Pulay extrapolation of the Fock matrix. DIISDepth
	// bounds the stored history (default 8).
	DIIS      bool
	DIISDepth int

	// InitialDensity, when non-nil, replaces the zero-matrix starting guess,
	// e.g. with a density recovered from a checkpoint. It is copied, never
	// mutated.
	InitialDensity *mat.Dense

	// Logger receives the per-iteration trace. Nil discards it.
	Logger *log.Logger
}

func (cfg *Config) fill(n int) error {
	if cfg.EnergyTol < 0 {
		return &DomainError{"Solve", fmt.Sprintf("negative energy tolerance %g", cfg.EnergyTol)}
	}
	if cfg.EnergyTol == 0 {
		cfg.EnergyTol = DefaultEnergyTol
	}
	if cfg.DensityTol < 0 {
		return &DomainError{"Solve", fmt.Sprintf("negative density tolerance %g", cfg.DensityTol)}
	}
	if cfg.MaxIter < 0 {
		return &DomainError{"Solve", fmt.Sprintf("negative iteration bound %d", cfg.MaxIter)}
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = DefaultMaxIter
	}
	if cfg.DIISDepth <= 0 {
		cfg.DIISDepth = defaultDIISDepth
	}
	if cfg.InitialDensity != nil {
		if r, c := cfg.InitialDensity.Dims(); r != n || c != n {
			return &ShapeError{"Solve", fmt.Sprintf("initial density is %dx%d, want %dx%d", r, c, n, n)}
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return nil
}

// Result carries the output of an SCF run. For a Converged run the fields
// hold the self-consistent solution; for MaxIterExceeded they hold the state
// after the last completed iteration.
type Result struct {
	Status      Status
	Energy      float64   // total energy E_tot, Hartree
	Enuc        float64   // nuclear repulsion part
	Iterations  int       // completed iterations
	OrbEnergies []float64 // ascending orbital energies of the last eigensolve
	Coeffs      *mat.Dense
	Density     *mat.Dense
	History     []float64 // total energy after each iteration
}

// Solve runs the SCF fixed-point iteration to self-consistency:
//
//	F = H + G(D);  F C = S C diag(eps);  D' = 2 C_occ C_occ^T;  E' = E(F,H,D')
//
// repeated until |E' - E| (and, if configured, ||D' - D||_F) drops below
// tolerance. The density starts from the zero matrix unless the Config
// supplies a guess, so the first iteration diagonalizes the bare core
// Hamiltonian.
//
// When the iteration bound is hit first, Solve returns the last Result with
// Status MaxIterExceeded together with a *ConvergenceError; every other error
// kind returns a nil Result.
func Solve(sys *System, cfg Config) (*Result, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	n := sys.NBasis()
	if err := cfg.fill(n); err != nil {
		return nil, err
	}

	enuc, err := NuclearRepulsion(sys.Charges, sys.Coords)
	if err != nil {
		return nil, err
	}
	h, err := CoreHamiltonian(sys.T, sys.V)
	if err != nil {
		return nil, err
	}
	d := InitialDensity(n)
	if cfg.InitialDensity != nil {
		d.Copy(cfg.InitialDensity)
	}

	var acc *diis
	if cfg.DIIS {
		if acc, err = newDIIS(sys.S, cfg.DIISDepth); err != nil {
			return nil, err
		}
	}

	cfg.Logger.Printf("SCF start: N = %d, nocc = %d, E_nn = %.10f a.u.", n, sys.NOcc, enuc)
	cfg.Logger.Printf("core Hamiltonian:\n%s", FormatMatrix(h))

	res := &Result{Status: Iterating, Enuc: enuc}
	eprev := 0.0
	lastDE := math.Inf(1)
	diff := mat.NewDense(n, n, nil)

	for iter := 1; iter <= cfg.MaxIter; iter++ {
		tstart := time.Now()

		f, err := Fock(h, sys.ERI, d)
		if err != nil {
			return nil, err
		}
		// DIIS only sees pairs with a nonzero density: the zero starting
		// guess commutes with anything, and its zero residual would pin the
		// extrapolation to the bare core Hamiltonian.
		fEff := f
		pushed := false
		if acc != nil && (iter > 1 || cfg.InitialDensity != nil) {
			acc.push(f, d)
			fEff = acc.extrapolate()
			pushed = true
		}

		energies, c, err := Eigensolve(fEff, sys.S)
		if err != nil {
			return nil, err
		}
		dNew, err := Density(c, sys.NOcc)
		if err != nil {
			return nil, err
		}
		e := TotalEnergy(f, h, dNew, enuc)

		diff.Sub(dNew, d)
		dDiff := floats.Norm(diff.RawMatrix().Data, 2)
		dE := e - eprev
		lastDE = dE

		cfg.Logger.Printf("iteration %d: E = %.10f, dE = %.3e, |dD| = %.3e (%v)",
			iter, e, dE, dDiff, time.Since(tstart))
		if pushed {
			cfg.Logger.Printf("iteration %d: DIIS dRMS = %.3e", iter, acc.rms())
		}

		res.Energy = e
		res.OrbEnergies = energies
		res.Coeffs = c
		res.Density = dNew
		res.Iterations = iter
		res.History = append(res.History, e)

		if math.Abs(dE) < cfg.EnergyTol && (cfg.DensityTol == 0 || dDiff < cfg.DensityTol) {
			res.Status = Converged
			cfg.Logger.Printf("SCF converged after %d iterations: E_tot = %.10f a.u.", iter, e)
			return res, nil
		}

		d = dNew
		eprev = e
	}

	res.Status = MaxIterExceeded
	cfg.Logger.Printf("SCF not converged after %d iterations", cfg.MaxIter)
	return res, &ConvergenceError{
		Iterations: cfg.MaxIter,
		Energy:     res.Energy,
		DeltaE:     lastDE,
	}
}
