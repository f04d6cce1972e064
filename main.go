// Public domain.

package main

import "github.com/mkreidl/bsc2java/internal/bscprog"

func main() {
	bscprog.Main()
}
