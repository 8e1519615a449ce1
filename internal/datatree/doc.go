/*
Package datatree holds the composed data tree: named groups whose children
are either raw text leaves or further groups.

A Node stores each child exactly once. Named access (Get) and positional
access (At, Collection) are two views over that single ordered storage, so
they can never disagree. Child order is first-appearance order: a name keeps
the position it was given when it was first inserted, even if its value is
later overwritten.

The positional view is exposed to consumers under the reserved name
CollectionKey, which therefore can never be used as a real child name.
*/
package datatree
