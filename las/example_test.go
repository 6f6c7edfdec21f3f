package las_test

import (
	"errors"
	"fmt"

	"github.com/tsawler/lasgo/las"
)

const sample = `~VERSION INFORMATION
 VERS.   2.0 : CWLS LOG ASCII STANDARD - VERSION 2.0
 WRAP.   NO  : ONE LINE PER DEPTH STEP
~WELL INFORMATION
 STRT.M      1670.0 : START DEPTH
 NULL.       -999.25 : NULL VALUE
 WELL.   ANY ET AL 12-34 : WELL
~CURVE INFORMATION
 DEPT.M       : 1 DEPTH
 GR  .GAPI    : 2 GAMMA RAY
~A DEPTH GR
 1670.0  55.1
 1669.5  61.7
`

func Example() {
	l := las.New(sample)

	version, err := l.Version()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("version:", version)
	fmt.Println("curves:", l.Headers())
	fmt.Println("well:", l.WellInfo()["WELL"].Value)

	gr, _ := l.Column("GR")
	fmt.Println("GR:", gr)
	// Output:
	// version: 2
	// curves: [DEPT GR]
	// well: ANY ET AL 12-34
	// GR: [55.1 61.7]
}

func ExampleLog_Column() {
	l := las.New(sample)
	if _, err := l.Column("RHOB"); errors.Is(err, las.ErrFieldNotFound) {
		fmt.Println(err)
	}
	// Output:
	// field not found: "RHOB"
}
