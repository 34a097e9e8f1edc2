/*
Package dump renders sum trees and dense views as human-readable text
(for debugging purposes).

All renderers consume only the public query API of their subject; they
never reach into tree internals and cannot mutate anything.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump
