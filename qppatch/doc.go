/*
Command qppatch replaces phase vector initializers in code generated by
bsc2java.

The phase vectors of the star table, assigned on lines like

	QP[17] = new float[]{3.262e+02f, 1.68e+00f, ...};

can be recomputed outside of bsc2java, for example after propagating
positions to a different epoch.  qppatch takes the recomputed values as a
file of complete replacement lines, line i replacing the assignment of
element i, and writes the generated code with those lines substituted.
All other lines are copied unchanged.

	Usage: qppatch [options] <generated.java> <replacements>
	  -o="": output file, default standard output
	  -var="QP": array variable to patch
	  -v=false: display version and copyright

An assignment to an element with no replacement line is an error.
*/
package main
