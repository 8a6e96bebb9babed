/*
Package process describes the container processes to be fingerprinted.

A [Descriptor] is an immutable snapshot of a single process, taken once per
scan: its PID, executable name, command line and working directory. Descriptors
are usually created from the process information discovered by lxkns, using
[FromProcess], which additionally looks into the proc filesystem for the
process' working directory and executable.

All paths in a descriptor are in the context of the process' own mount
namespace, that is, inside the container.
*/
package process
