/*
Package resolvent provides the identity of "a package in a particular
resolution context": the package name, its slot, and the destination the
resolved action targets.

The canonical text form is `category/name[:slot][@destination]`, e.g.
`dev-libs/openssl:0` or `sys-devel/gcc:13@binaries`. The default destination
(`slash`) is never written out.

This package owns formatting, parsing, ordering and hashing so that every
other package can treat a Resolvent as an opaque, comparable value.
*/
package resolvent
