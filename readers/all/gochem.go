//go:build !asann_nogochem

package all

import _ "github.com/RubenStaub/asann/readers/gochemreader" //XYZ, PDB, GRO
