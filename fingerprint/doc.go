/*
Package fingerprint defines the plugin interface between the runtime finder
and its runtime fingerprint detector plugins.

Each detector plugin recognizes processes of a particular runtime family, such
as Java, and then proposes an [Action]: the invocation of an external helper
program that extracts further details, such as the runtime name and version,
from the artifacts of the recognized process.

The sub-package “all” pulls in all fingerprint detector plugins supported
out-of-the-box by this module. The individual detector plugins are implemented
in the other sub-packages, for instance “java”.
*/
package fingerprint
