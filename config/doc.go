/*
Package config defines the runtime fingerprinting configuration, as read from a
TOML file (usually named “config.toml”).

The configuration carries hints for those runtimes that cannot be identified
from their command lines alone. For instance, a Java application started using
“-classpath” only reveals its main class, so the configuration maps well-known
main classes to runtime names and the jar (name fragment) to inspect further:

	[helpers]
	java_runtimes = "/opt/insights/fpr_java_runtimes"
	kind_executable = "/opt/insights/fpr_executable_version"

	[[fingerprints.java]]
	runtime_name = "Apache Tomcat"
	main_class = "org.apache.catalina.startup.Bootstrap"
	main_jar = "bootstrap.jar"

	[[fingerprints.executable]]
	runtime_name = "Node.js"
	process_name = "node"

The Java helpers default to “./fpr_java_runtimes” and
“./fpr_java_jboss_modules”. The executable helper has no default and must be
configured as soon as there are executable fingerprints; it gets invoked with
the arguments “<outdir> <executable> <runtime-name>”, in this order.

Fingerprint entries are always evaluated in the order they appear in the
configuration file, so that earlier entries take precedence over later ones.
*/
package config
