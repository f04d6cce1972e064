/*
Command bsc2java generates Java star table initializers from the Yale Bright
Star Catalogue.

Contents

  Program overview
  Command line usage
  Configuring file locations
  Config file
  File formats
  Output
  Companion outputs


Program overview

Input is the fixed width Bright Star Catalogue (BSC), a table of proper
names, and a table of IAU star names.  Output is Java source code: a
sequence of private static methods that fill pre-allocated arrays of a star
table, brightest star first, and a method that calls them all.

Stars are ordered by visual magnitude.  Records with no magnitude are
dropped.  Records with an unusable HR number or position are skipped.
Fields that are blank or don't parse, such as a missing parallax or
radial velocity, are written as Float.NaN.

Sample output for a single star:

  private static void initializeStars_0000_0099()
  {
  BRIGHT_STAR_NUMBER[0] = 2491;
  FLAMSTEED_BAYER[0] = "9Alp CMa";
  IAU_NAME[0] = "Sirius";
  MAG[0] = -1.46f;
  PAR[0] = 0.375f;
  QP[0] = new float[]{8.693e+00f, 1.77e+00f, -2.92e-01f, -8.00e+00f, -2.68e-06f, -5.84e-06f};
  SPECTRAL_TYPE[0] = 'A';
  }

  private static void initializeStars()
  {
  initializeStars_0000_0099();
  }


Command line usage

  bsc2java [options]     generate Java star table initializers
  bsc2java -h            display help
  bsc2java -v            display version and copyright

Options:
  -c <config-file>
  -p <path>
  -b <catalog-file>
  -n <names-file>
  -i <IAU-names-file>
  -o <output-file>

Options given on the command line override the config file.


Configuring file locations

Input and output files not named with an option or in the config file are
found by default names in the directory given by -p, or the config file
key "path", or the current directory:

  catalog                  the BSC
  names.dat                proper names
  IAU_starnames_2017.txt   IAU names
  catalog.java             output

File names given explicitly are used as given.


Config file

The optional config file is YAML.  All keys are optional.

  path: data               # directory for default file names
  catalog: catalog
  names: names.dat
  iau_names: IAU_starnames_2017.txt
  output: catalog.java
  arrow: stars.arrow       # Arrow IPC copy of the star table
  metrics: bsc2java.prom   # run statistics, prometheus text format
  atomic: true             # replace outputs only when complete
  iau_marker: HR           # catalog tag selecting IAU name lines
  batch_size: 100          # entries per generated method
  naming:                  # Java identifiers
    index: BRIGHT_STAR_NUMBER
    designation: FLAMSTEED_BAYER
    iau_name: IAU_NAME
    mag: MAG
    parallax: PAR
    phase: QP
    spectral_type: SPECTRAL_TYPE
    method: initializeStars
  log:
    level: info            # debug shows each skipped record
    format: console        # or json

Unknown keys are errors.


File formats

The catalog is the BSC 5th revised edition, one star per line.  Columns used,
numbered from 1:

  1-4      HR number
  5-14     Flamsteed/Bayer designation
  76-83    RA J2000, hhmmss.s
  84-90    Dec J2000, sddmmss
  103-107  V magnitude
  130      spectral class
  149-154  proper motion in RA, arc seconds per year
  155-160  proper motion in Dec, arc seconds per year
  162-166  parallax, arc seconds
  167-170  radial velocity, km/s

The names file has a four digit HR number in columns 1-4 and a name
starting at column 7.

The IAU names file is whitespace separated.  A line whose second field is
the marker "HR" names the star with the HR number of the third field.  Other
lines are ignored.

In both name files a later line for the same HR number replaces an earlier
one.  A proper name replaces the catalog designation in the output.


Output

Each batch method holds batch_size stars.  For a star at table index i the
method assigns, in order, the HR number, the name if there is one, the IAU
name if there is one, the magnitude, the parallax, the phase vector, and the
spectral class.

The phase vector QP[i] holds distance in light years, RA and Dec in
radians, radial velocity in km/s, and proper motion in RA and Dec in radians
per year.  The RA proper motion is not multiplied by cos(Dec).  A zero
parallax gives no distance, and both are written as Float.NaN.

With atomic set, which is the default, output goes to a temporary file in
the destination directory and replaces the destination only when complete.


Companion outputs

When "arrow" is set, the star table is also written as an Apache Arrow IPC
file with one row per generated entry and nulls for missing values.

When "metrics" is set, counts of records read, dropped, skipped and emitted
are written in prometheus text format for the node exporter textfile
collector.

See command qppatch for replacing the phase vectors of generated code.

-------------
Public domain.
*/
package main
