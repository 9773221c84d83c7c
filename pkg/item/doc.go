// Package item holds the item catalog of one game version: the decoded
// records of items.json indexed by numeric id and by lower-cased name.
package item
