/*
Package java implements the fingerprint detector plugin for Java applications.

Java processes are recognized by their executable name ending in “java” and
are then classified according to how the application was launched:

  - “java -jar app.jar”: the executable jar gets inspected.
  - “java -jar jboss-modules.jar -Djboss.home.dir=...”: the jar is only the
    JBoss Modules loader, so instead the JBoss home directory gets inspected.
  - “java -cp a.jar:b.jar org.example.Main”: the main class is looked up in the
    Java fingerprints configuration, which in turn names the jar to inspect.

A “-jar” launch always takes precedence over any classpath given, as a Java
process launched from an executable jar ignores the classpath option.
*/
package java
