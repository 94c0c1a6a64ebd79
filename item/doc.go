// Package item defines the DataItem value type exchanged between tiles:
// either a normal payload fragment or a control record carrying an exit
// decision. Items are value types; two items are equal iff every field
// matches.
package item
