//go:build !asann_nocif

package all

import _ "github.com/RubenStaub/asann/readers/cifreader" //CIF, mmCIF
