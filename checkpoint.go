// checkpoint.go --  This file is part of goscf project.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// Checkpoints are zstd-compressed text: a short header of "key value" lines
// followed by the matrices row by row. Floats are written with enough digits
// to round-trip exactly, so a restart from a checkpointed density resumes
// where the writing run stopped.

const checkpointMagic = "goscf-checkpoint 1"

// WriteCheckpoint saves the state of a Result to fname. The energy history is
// not stored; everything else survives a round-trip through ReadCheckpoint.
func WriteCheckpoint(fname string, res *Result) error {
	if res == nil || res.Density == nil || res.Coeffs == nil {
		return &DomainError{"WriteCheckpoint", "result holds no state to save"}
	}
	n, _ := res.Density.Dims()

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	w := bufio.NewWriter(enc)

	fmt.Fprintln(w, checkpointMagic)
	fmt.Fprintln(w, "nbasis", n)
	fmt.Fprintln(w, "status", int(res.Status))
	fmt.Fprintln(w, "iterations", res.Iterations)
	fmt.Fprintf(w, "energy %.17g\n", res.Energy)
	fmt.Fprintf(w, "enuc %.17g\n", res.Enuc)
	fmt.Fprintln(w, "orbenergies")
	writeRow(w, res.OrbEnergies)
	fmt.Fprintln(w, "density")
	writeMatrix(w, res.Density)
	fmt.Fprintln(w, "coeffs")
	writeMatrix(w, res.Coeffs)

	// The file is closed explicitly: a close error here means the final
	// flush never reached the disk, and the checkpoint is unusable.
	if err := w.Flush(); err != nil {
		enc.Close()
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeRow(w *bufio.Writer, row []float64) {
	for i, v := range row {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%.17g", v)
	}
	w.WriteByte('\n')
}

func writeMatrix(w *bufio.Writer, m *mat.Dense) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		writeRow(w, m.RawRowView(i))
	}
}

// ReadCheckpoint restores a Result previously saved with WriteCheckpoint.
func ReadCheckpoint(fname string) (*Result, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)

	line, err := nextLine(sc, fname)
	if err != nil {
		return nil, err
	}
	if line != checkpointMagic {
		return nil, &DomainError{"ReadCheckpoint", fname + ": not a goscf checkpoint"}
	}

	res := &Result{}
	n := 0
	for _, key := range []string{"nbasis", "status", "iterations", "energy", "enuc"} {
		line, err = nextLine(sc, fname)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != key {
			return nil, &DomainError{"ReadCheckpoint", fname + ": malformed header line: " + line}
		}
		switch key {
		case "nbasis":
			n, err = strconv.Atoi(fields[1])
		case "status":
			var v int
			v, err = strconv.Atoi(fields[1])
			if err == nil && (v < int(Initializing) || v > int(MaxIterExceeded)) {
				return nil, &DomainError{"ReadCheckpoint",
					fmt.Sprintf("%s: status %d outside [%d, %d]", fname, v, Initializing, MaxIterExceeded)}
			}
			res.Status = Status(v)
		case "iterations":
			res.Iterations, err = strconv.Atoi(fields[1])
		case "energy":
			res.Energy, err = strconv.ParseFloat(fields[1], 64)
		case "enuc":
			res.Enuc, err = strconv.ParseFloat(fields[1], 64)
		}
		if err != nil {
			return nil, &DomainError{"ReadCheckpoint", fname + ": bad " + key + " value: " + fields[1]}
		}
	}
	if n <= 0 {
		return nil, &DomainError{"ReadCheckpoint", fname + ": non-positive basis size"}
	}

	if err = expectLine(sc, fname, "orbenergies"); err != nil {
		return nil, err
	}
	if res.OrbEnergies, err = readRow(sc, fname, n); err != nil {
		return nil, err
	}
	if err = expectLine(sc, fname, "density"); err != nil {
		return nil, err
	}
	if res.Density, err = readMatrix(sc, fname, n); err != nil {
		return nil, err
	}
	if err = expectLine(sc, fname, "coeffs"); err != nil {
		return nil, err
	}
	if res.Coeffs, err = readMatrix(sc, fname, n); err != nil {
		return nil, err
	}
	return res, nil
}

func nextLine(sc *bufio.Scanner, fname string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", &DomainError{"ReadCheckpoint", fname + ": unexpected end of checkpoint"}
	}
	return sc.Text(), nil
}

func expectLine(sc *bufio.Scanner, fname, want string) error {
	line, err := nextLine(sc, fname)
	if err != nil {
		return err
	}
	if line != want {
		return &DomainError{"ReadCheckpoint", fname + ": expected " + want + " section, got: " + line}
	}
	return nil
}

func readRow(sc *bufio.Scanner, fname string, n int) ([]float64, error) {
	line, err := nextLine(sc, fname)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, &DomainError{"ReadCheckpoint",
			fmt.Sprintf("%s: row has %d values, want %d", fname, len(fields), n)}
	}
	row := make([]float64, n)
	for i, s := range fields {
		if row[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, &DomainError{"ReadCheckpoint", fname + ": bad float: " + s}
		}
	}
	return row, nil
}

func readMatrix(sc *bufio.Scanner, fname string, n int) (*mat.Dense, error) {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row, err := readRow(sc, fname, n)
		if err != nil {
			return nil, err
		}
		m.SetRow(i, row)
	}
	return m, nil
}
