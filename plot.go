// plot.go --  This file is part of goscf project.
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
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotConvergence renders the per-iteration total energy of a Result's
// History as a line plot and saves it to fname. The file format follows the
// extension (png, pdf, svg, ...).
func PlotConvergence(history []float64, fname string) error {
	if len(history) == 0 {
		return &DomainError{"PlotConvergence", "empty energy history"}
	}
	pts := make(plotter.XYs, len(history))
	for i, e := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = e
	}

	p := plot.New()
	p.Title.Text = "SCF convergence"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Total energy (a.u.)"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points)

	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, fname)
}
