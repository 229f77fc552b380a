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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error.
//
// The Is() function checks whether an error is a curated error with a given
// pattern. The pattern is what differentiates one curated error from another.
// For example:
//
//	e := curated.Errorf("value too large: %d", 256)
//
//	if curated.Is(e, "value too large: %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than just at the head.
//
//	e := curated.Errorf("value too large: %d", 256)
//	f := curated.Errorf("setup: %v", e)
//
//	curated.Is(f, "value too large: %d")   -> false
//	curated.Has(f, "value too large: %d")  -> true
//
// The IsAny() function answers whether the error was created by this package
// at all. A curated error is one that the program has anticipated; we can
// treat an uncurated error as unexpected and handle it accordingly.
//
// The Error() function for curated errors normalises the error chain,
// removing duplicate adjacent parts. The practical advantage of this is that
// it relieves the programmer of worrying about when and how to wrap errors.
// Wrapping at every call site:
//
//	return curated.Errorf("cartridge: %v", err)
//
// results in the message
//
//	cartridge: file not found
//
// and never
//
//	cartridge: cartridge: file not found
//
// no matter how many times the error is wrapped on its way up the call chain.
//
// A chain part is anything separated by the sub-string ': ', as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan).
//
// There is no special provision for sentinel errors but they are achievable
// in practice with the Is() and Has() functions. Sentinel patterns should be
// stored as a const string, suitably named and commented.
package curated
