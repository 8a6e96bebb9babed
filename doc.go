/*
Package runtimefinder classifies container processes by the application
runtime they belong to and tells which helper program to run in order to
extract further runtime details, such as the runtime name and version.

# Quick Start

	cfg, err := config.LoadDir("/")
	if err != nil {
	    // configuration problems are fatal, before any process gets looked at.
	}
	finder := runtimefinder.New()
	for _, result := range finder.Scan(ctx, cfg, "out", processes) {
	    // run result.Action[0] with the arguments result.Action[1:]
	}

The runtimefinder is safe to be used in concurrent scans.

# Principles of Runtime Fingerprinting

A runtimefinder dispatches each process to a list of fingerprint detector
plugins, one plugin per runtime family, such as Java. The detectors are tried
in their plugin order and the first detector recognizing a process wins. A
detector only looks at a process' executable name, command line, working
directory and the fingerprints configuration; it never touches any files nor
runs any programs. Instead, it proposes an “action”: the invocation of an
external helper program, such as a helper extracting version information from
an executable jar.

Detection never fails with an error: processes with unexpected or malformed
command lines simply aren't recognized. This way, a single odd process never
spoils the fingerprinting of the other processes. It also means that it is
better to skip a process than to guess wrong.

The set of detectors can be extended by plugging in new detectors, see the
[github.com/siemens/runtimefinder/fingerprint] package.

# Java Applications

Java processes are recognized by their executable name ending in “java”, and
then:

  - “java -jar app.jar” processes propose to inspect the executable jar, where
    relative jar paths are taken relative to the working directory.
  - “java -jar jboss-modules.jar” processes propose to inspect the JBoss home
    directory given by the “-Djboss.home.dir=” system property instead.
  - “java -classpath” processes need configuration: the first configured Java
    fingerprint whose main class appears in the command line and whose main
    jar name fragment appears in the classpath determines the jar to inspect.

# Executables

Further runtimes, such as Node.js or Python, can be configured to be
recognized by the names of their executables. Their proposed action asks the
executable for its version.
*/
package runtimefinder
