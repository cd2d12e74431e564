// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Command slx is the SLX compiler frontend tooling: it resolves module
// references against the workspace search configuration and reports how
// the import machinery sees the world.
package main

import "os"

func main() {

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
