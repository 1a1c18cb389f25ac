// This file is part of Gopherv32.
//
// Gopherv32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherv32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherv32.  If not, see <https://www.gnu.org/licenses/>.

// Package execution defines the result descriptor produced by the
// execute stage. The descriptor is a tagged union: the Kind field says
// which of the remaining fields carry information. It lives in its own
// package because it is shared between the cpu package (which produces
// it) and the pipeline's memory and writeback stages (which consume
// it).
package execution
