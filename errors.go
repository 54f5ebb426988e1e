/*
 * errors.go, part of atomcount.
 *
 * Copyright 2026 The atomcount developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package atomcount

import "fmt"

//Error is the interface implemented by all errors returned from this
//library. The Decorate method adds call-site information to the error
//as it travels up the stack, without changing its type or wrapping it
//around something else. If passed an empty string, Decorate just
//returns the current decoration slice without adding to it.
type Error interface {
	error
	Decorate(string) []string
}

//RowError is implemented by errors that can be traced back to one row
//of an input table. Row returns the zero-based index of the offending
//row, or -1 when the error is not associated with any row.
type RowError interface {
	Error
	Row() int
}

//ErrUnknownElement reports an element symbol with no entry in the
//density catalog.
type ErrUnknownElement struct {
	Symbol string
	row    int
	deco   []string
}

func (err *ErrUnknownElement) Error() string {
	return fmt.Sprintf("atomcount: unknown element %q: no density entry in the catalog", err.Symbol)
}

//Decorate adds new information to the error
func (err *ErrUnknownElement) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ErrUnknownElement) Row() int { return err.row }

//ErrUnknownFacet reports a facet that was supplied explicitly but has
//no areal-density entry for the given element. Blank facets never
//produce this error, they resolve to the element's default facet.
type ErrUnknownFacet struct {
	Symbol string
	Facet  string
	row    int
	deco   []string
}

func (err *ErrUnknownFacet) Error() string {
	return fmt.Sprintf("atomcount: unknown facet %q for element %q", err.Facet, err.Symbol)
}

//Decorate adds new information to the error
func (err *ErrUnknownFacet) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ErrUnknownFacet) Row() int { return err.row }

//ErrInvalidGeometry reports a size parameter or contact angle for
//which no spherical cap exists (size <= 0 or theta outside (0,180)).
type ErrInvalidGeometry struct {
	Size  float64
	Theta float64
	row   int
	deco  []string
}

func (err *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("atomcount: invalid geometry: size %g A, theta %g degrees (need size > 0 and 0 < theta < 180)", err.Size, err.Theta)
}

//Decorate adds new information to the error
func (err *ErrInvalidGeometry) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ErrInvalidGeometry) Row() int { return err.row }

//ErrMissingSize reports a row that supplies neither of the two size
//parameters.
type ErrMissingSize struct {
	row  int
	deco []string
}

func (err *ErrMissingSize) Error() string {
	return fmt.Sprintf("atomcount: row %d: neither r nor R supplied", err.row)
}

//Decorate adds new information to the error
func (err *ErrMissingSize) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ErrMissingSize) Row() int { return err.row }

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. It panics on any other error
//type, as only atomcount errors should reach it.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//withRow stamps the given row index on errors that track one, so a
//failure deep in the engine can be traced to its input row.
func withRow(err error, row int) error {
	switch e := err.(type) {
	case *ErrUnknownElement:
		e.row = row
	case *ErrUnknownFacet:
		e.row = row
	case *ErrInvalidGeometry:
		e.row = row
	case *ErrMissingSize:
		e.row = row
	}
	return err
}
