// Command geoapi-validate checks metadata documents and FlatGeobuf layers
// against the GeoAPI metadata conformance rules.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNotConformant) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		}
		os.Exit(1)
	}
}
