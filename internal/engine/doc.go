// Package engine evaluates fire-alarm audibility methods.
//
// Each method is encapsulated in a Calculator and registered on an Engine by name. Raw field text
// goes through Parse, ParseAll or ParseFields before a Calculator sees it, and every failure is
// reported as an *InvalidNumberError or a *DomainError.
package engine
