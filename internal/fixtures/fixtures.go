// Package fixtures holds LAS documents shared by the package tests.
package fixtures

// Example1 is a LAS 2.0 file in the layout of the CWLS sample: every section
// present, API codes in the curve section and an ~O note.
const Example1 = `~VERSION INFORMATION
 VERS.                          2.0 :   CWLS LOG ASCII STANDARD -VERSION 2.0
 WRAP.                          NO  :   ONE LINE PER DEPTH STEP
~WELL INFORMATION
#MNEM.UNIT              DATA                       DESCRIPTION
#----- -----            ----------               -------------------------
STRT    .M              1670.0000                :START DEPTH
STOP    .M              1669.7450                :STOP DEPTH
STEP    .M              -0.1250                  :STEP
NULL    .               -999.25                  :NULL VALUE
COMP    .       ANY OIL COMPANY INC.             :COMPANY
WELL    .       AAAAA_2                          :WELL
FLD     .       WILDCAT                          :FIELD
LOC     .       12-34-12-34W5M                   :LOCATION
PROV    .       ALBERTA                          :PROVINCE
SRVC    .       ANY LOGGING COMPANY INC.         :SERVICE COMPANY
DATE    .       13-DEC-86                        :LOG DATE
UWI     .       100123401234W500                 :UNIQUE WELL ID
~CURVE INFORMATION
#MNEM.UNIT              API CODES                   CURVE DESCRIPTION
#------------------     ------------              -------------------------
DEPT    .M                                       :  1  DEPTH
DT      .US/M           60 520 32 00             :  2  SONIC TRANSIT TIME
RHOB    .K/M3           45 350 01 00             :  3  BULK DENSITY
NPHI    .V/V            42 890 00 00             :  4  NEUTRON POROSITY
SFLU    .OHMM           07 220 04 00             :  5  SHALLOW RESISTIVITY
SFLA    .OHMM           07 222 01 00             :  6  SHALLOW RESISTIVITY
ILM     .OHMM           07 120 44 00             :  7  MEDIUM RESISTIVITY
ILD     .OHMM           07 120 46 00             :  8  DEEP RESISTIVITY
~PARAMETER INFORMATION
#MNEM.UNIT              VALUE             DESCRIPTION
#--------------     ----------------      -----------------------------------------------
MUD     .               GEL CHEM        :   MUD TYPE
BHT     .DEGC           35.5000         :   BOTTOM HOLE TEMPERATURE
BS      .MM             200.0000        :   BIT SIZE
FD      .K/M3           1000.0000       :   FLUID DENSITY
MATR    .               SAND            :   NEUTRON MATRIX
MDEN    .               2710.0000       :   LOGGING MATRIX DENSITY
RMF     .OHMM           0.2160          :   MUD FILTRATE RESISTIVITY
DFD     .K/M3           1525.0000       :   DRILL FLUID DENSITY
~OTHER
     Note: The logging tools became stuck at 625 metres causing the data
     between 625 metres and 615 metres to be invalid.
~A  DEPTH     DT    RHOB        NPHI   SFLU    SFLA      ILM      ILD
1670.000   123.450 2550.000    0.450  123.450  123.450  110.200  105.600
1669.875   123.450 2550.000    0.450  123.450  123.450  110.200  105.600
1669.750   123.450 2550.000    0.450  123.450  123.450  110.200  105.600
1669.745   123.450 2550.000 -999.250  123.450  123.450  110.200  105.600
`

// Example1Headers are the curve mnemonics of Example1.
var Example1Headers = []string{"DEPT", "DT", "RHOB", "NPHI", "SFLU", "SFLA", "ILM", "ILD"}

// Example1Data is the data matrix of Example1.
var Example1Data = [][]float64{
	{1670.0, 123.45, 2550.0, 0.45, 123.45, 123.45, 110.2, 105.6},
	{1669.875, 123.45, 2550.0, 0.45, 123.45, 123.45, 110.2, 105.6},
	{1669.75, 123.45, 2550.0, 0.45, 123.45, 123.45, 110.2, 105.6},
	{1669.745, 123.45, 2550.0, -999.25, 123.45, 123.45, 110.2, 105.6},
}

// Petrel is a LAS 2.0 export in the style written by PETREL: banner
// comments, compact version lines, dots separated from mnemonics, no ~O
// and no ~P section.
const Petrel = `# LAS format log file from PETREL
# Project units are specified as depth units
#==================================================================
~Version Information
VERS.   2.0:
WRAP.   NO:
#==================================================================
~WELL INFORMATION
#MNEM.UNIT      DATA             DESCRIPTION
#---- ------ --------------   -----------------------------
STRT .m 1499.879000 :
STOP .m      1501.629000 :
STEP .m      0.000000 :
NULL . -999.250000 :
COMP.        : COMPANY
WELL.   A10  : WELL
FLD.        : FIELD
LOC.        : LOCATION
SRVC.        : SERVICE COMPANY
DATE.   Tuesday, July 02 2002   : DATE
PROV.        : PROVINCE
UWI.   02c62c82-552d-444d-bcc7-5ff5e9a4e3c7  : UNIQUE WELL ID
#==================================================================
~CURVE INFORMATION
#MNEM.UNIT      API CODE     CURVE DESCRIPTION
#---- ------ --------------   -----------------------------
DEPT .m                   : DEPTH
Perm .mD                  :
Gamma .gAPI               :
Porosity .m3/m3           :
Fluvialfacies .           :
NetGross .                :
#==================================================================
~A
1499.879 -999.25 -999.25 -999.25 -999.25 0
1500.129 -999.25 -999.25 -999.25 -999.25 0
1500.629 -999.25 -999.25 -999.25 -999.25 0
1501.129 -999.25 -999.25 0.270646 0 0
1501.629 124.5799 78.869453 0.267428 0 0
`

// PetrelHeaders are the curve mnemonics of Petrel.
var PetrelHeaders = []string{"DEPT", "Perm", "Gamma", "Porosity", "Fluvialfacies", "NetGross"}

// Wrapped is a LAS 2.0 file in wrap mode: each depth sample spans two lines.
const Wrapped = `~Version
VERS.  2.0 : CWLS LOG ASCII STANDARD - VERSION 2.0
WRAP.  YES : Multiple lines per depth step
~Well
NULL.  -999.25 : NULL VALUE
~Curve
DEPT.M   : Depth
GR  .GAPI : Gamma ray
NPHI.V/V  : Neutron porosity
~ASCII
910.000
    45.2  0.31
910.500
    47.9  -999.25
`
