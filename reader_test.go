package asann

import (
	"errors"
	"fmt"
	"testing"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/mat"
)

// testStructure is a minimal Structure, with cartesian coordinates and
// optionally a cell.
type testStructure struct {
	name   string
	reader string
	cell   *v3.Matrix
	cart   *v3.Matrix
}

func (S *testStructure) PBC() bool              { return S.cell != nil }
func (S *testStructure) Len() int               { return S.cart.NVecs() }
func (S *testStructure) Symbols() []string      { return make([]string, S.cart.NVecs()) }
func (S *testStructure) CellMatrix() *v3.Matrix { return CopyMatrix(S.cell) }
func (S *testStructure) CartCoords() *v3.Matrix { return CopyMatrix(S.cart) }
func (S *testStructure) Reader() string         { return S.reader }
func (S *testStructure) FileName() string       { return S.name }
func (S *testStructure) FracCoords() (*v3.Matrix, error) {
	if S.cell == nil {
		return nil, NewError(ErrNoCell, S.name, "FracCoords")
	}
	return CartToFrac(S.cart, S.cell)
}
func (S *testStructure) Coords() (*v3.Matrix, error) { return Coords(S) }

// testReader counts its reads, and fails if err is set.
type testReader struct {
	name    string
	formats []string
	err     error
	reads   int
	last    *Options
}

func (R *testReader) Name() string      { return R.name }
func (R *testReader) Formats() []string { return R.formats }
func (R *testReader) Read(filename string, o *Options) (Structure, error) {
	R.reads++
	R.last = o
	if R.err != nil {
		return nil, NewError(R.err, filename, R.name+".Read")
	}
	cart, _ := v3.NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	return &testStructure{name: filename, reader: R.name, cart: cart}, nil
}

func TestNoReader(Te *testing.T) {
	R := NewRegistry()
	if R.Available() {
		Te.Error("An empty registry can't have readers available")
	}
	_, err := R.FromFile("water.xyz")
	if !errors.Is(err, ErrNoReader) {
		Te.Errorf("Expected ErrNoReader, got %v", err)
	}
}

func TestPreferredReader(Te *testing.T) {
	R := NewRegistry()
	fallback := &testReader{name: "fallback", formats: []string{"cif", "xyz"}}
	preferred := &testReader{name: "preferred", formats: []string{"xyz", "pdb"}}
	R.Register(20, fallback)
	R.Register(10, preferred)
	if r := R.Readers(); len(r) != 2 || r[0].Name() != "preferred" {
		Te.Fatalf("Readers are not sorted by priority: %v", r)
	}
	s, err := R.FromFile("water.XYZ")
	if err != nil {
		Te.Fatal(err)
	}
	if s.Reader() != "preferred" {
		Te.Errorf("xyz files should be read by the preferred reader, not %s", s.Reader())
	}
	s, err = R.FromFile("NaCl.cif.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if s.Reader() != "fallback" {
		Te.Errorf("cif files should be read by the fallback reader, not %s", s.Reader())
	}
	if preferred.reads != 1 || fallback.reads != 1 {
		Te.Errorf("Wrong number of reads: %d %d", preferred.reads, fallback.reads)
	}
}

func TestForcedReader(Te *testing.T) {
	R := NewRegistry()
	preferred := &testReader{name: "preferred", formats: []string{"xyz"}}
	fallback := &testReader{name: "fallback", formats: []string{"cif"}}
	R.Register(10, preferred)
	R.Register(20, fallback)
	s, err := R.FromFile("water.xyz", WithReader(" Fallback"), WithFrame(2), WithBlock("b"))
	if err != nil {
		Te.Fatal(err)
	}
	if s.Reader() != "fallback" {
		Te.Errorf("The forced reader was not used: %s", s.Reader())
	}
	if fallback.last.Frame != 2 || fallback.last.Block != "b" {
		Te.Errorf("Options not passed to the reader: %+v", fallback.last)
	}
	_, err = R.FromFile("water.xyz", WithReader("nope"))
	if !errors.Is(err, ErrUnknownReader) {
		Te.Errorf("Expected ErrUnknownReader, got %v", err)
	}
}

func TestDefaultFrame(Te *testing.T) {
	R := NewRegistry()
	tr := &testReader{name: "xyzonly", formats: []string{"xyz"}}
	R.Register(10, tr)
	if _, err := R.FromFile("water.xyz"); err != nil {
		Te.Fatal(err)
	}
	if tr.last.Frame != -1 {
		Te.Errorf("By default the last frame (-1) should be read, got %d", tr.last.Frame)
	}
	if o := NewOptions(WithFrame(0)); o.Frame != 0 {
		Te.Errorf("WithFrame(0) was not applied: %+v", o)
	}
}

func TestFormatOverride(Te *testing.T) {
	R := NewRegistry()
	R.Register(10, &testReader{name: "xyzonly", formats: []string{"xyz"}})
	if _, err := R.FromFile("water.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		Te.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := R.FromFile("water.txt", WithFormat(".XYZ")); err != nil {
		Te.Errorf("The format override was ignored: %v", err)
	}
}

func TestReaderErrors(Te *testing.T) {
	R := NewRegistry()
	libErr := fmt.Errorf("library failure")
	R.Register(10, &testReader{name: "broken", formats: []string{"xyz"}, err: libErr})
	_, err := R.FromFile("water.xyz")
	if !errors.Is(err, libErr) {
		Te.Fatalf("The reader error was not propagated: %v", err)
	}
	var e Error
	if !errors.As(err, &e) {
		Te.Fatalf("Expected an Error, got %T", err)
	}
	deco := e.Decorate("")
	if len(deco) != 2 || deco[0] != "broken.Read" || deco[1] != "FromFile" {
		Te.Errorf("Wrong decoration: %v", deco)
	}
	if e.FileName() != "water.xyz" || !e.Critical() {
		Te.Errorf("Wrong error data: %q %t", e.FileName(), e.Critical())
	}
}

func TestDoubleRegister(Te *testing.T) {
	R := NewRegistry()
	R.Register(10, &testReader{name: "twice"})
	defer func() {
		if recover() == nil {
			Te.Error("Registering a reader twice should panic")
		}
	}()
	R.Register(20, &testReader{name: "twice"})
}

func TestCoordsDispatch(Te *testing.T) {
	cart, _ := v3.NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	mol := &testStructure{cart: cart}
	c, err := mol.Coords()
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.Equal(c.Dense, cart.Dense) {
		Te.Error("Without PBC, Coords should return the cartesian coordinates")
	}
	if _, err := mol.FracCoords(); !errors.Is(err, ErrNoCell) {
		Te.Errorf("Expected ErrNoCell, got %v", err)
	}
	if mol.CellMatrix() != nil {
		Te.Error("Without PBC the cell must be nil")
	}
	cell, err := CellFromParameters(10, 10, 10, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	crystal := &testStructure{cart: cart, cell: cell}
	c, err = crystal.Coords()
	if err != nil {
		Te.Fatal(err)
	}
	expected, _ := v3.NewMatrix([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	if !mat.EqualApprox(c.Dense, expected.Dense, tol) {
		Te.Errorf("With PBC, Coords should return the fractional coordinates:\n%v", mat.Formatted(c.Dense))
	}
}
