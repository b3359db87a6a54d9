// plot_test.go --  This file is part of goscf project.
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
	"os"
	"path/filepath"
	"testing"
)

func TestPlotConvergence(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "conv.png")
	history := []float64{-1.5, -1.10, -1.115, -1.1166, -1.1167}
	if err := PlotConvergence(history, fname); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty plot file")
	}
}

func TestPlotConvergenceEmptyHistory(t *testing.T) {
	if err := PlotConvergence(nil, "unused.png"); err == nil {
		t.Error("empty history accepted")
	}
}
