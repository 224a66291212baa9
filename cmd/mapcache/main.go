/*
Command mapcache populates a map file cache and shows its contents.

	mapcache dump --id 3 --id 1 --id 2 --expire 1 --evict
	mapcache ls --id 1 --id 10
	mapcache dot --id 5 --id 3 --id 8 | dot -Tsvg > index.svg

Map files are produced by a demo generator. Tracing is configured with
--trace (level) and --trace-to (destination).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
