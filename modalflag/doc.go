// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first call NewArgs()
// with the array of arguments and then Parse() with no arguments. For
// example (error handling not shown):
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions. For example, handling
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// The most important difference between the standard flag package and this
// one is the handling of "modes". In this context, a mode is a special
// command line argument that, when specified, puts the program into a
// different mode of operation. The best example is the go command itself:
// build, doc, get, test, etc. Each mode is different enough to require a
// different set of flags and expected arguments.
//
// Sub-modes are declared with the AddSubModes() function. The first sub-mode
// in the list is the default, selected when no mode keyword appears in the
// argument list. All sub-mode comparisons are case insensitive.
//
//	md.AddSubModes("run", "play", "debug")
//
// After a successful Parse(), the selected mode is available with the Mode()
// function. Call NewMode() to declare flags for the selected mode and
// Parse() again to process the remaining arguments in the context of that
// mode.
package modalflag
