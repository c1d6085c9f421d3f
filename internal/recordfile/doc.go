// Package recordfile stores nag.Record values on disk. The encoding follows
// the file extension: `.json` is written through go-cty's JSON codec as a
// map of strings, `.yaml` and `.yml` as a YAML mapping.
package recordfile
