// Command modsym lists and queries coset representatives of the
// congruence subgroups Gamma_H(N).
//
//	modsym list -N 4
//	modsym normalize -N 24 -g 17 -g 19 17 6
//	modsym encode -N 18 -g 13 gamma_h_18.cbor
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
