// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package java

import (
	"github.com/siemens/runtimefinder/config"
	"github.com/siemens/runtimefinder/fingerprint"
	"github.com/siemens/runtimefinder/internal/test"
	"github.com/siemens/runtimefinder/process"
	"github.com/thediveo/go-plugger/v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	outdir    = "out"
	jarHelper = "jarHelper"
	jbmHelper = "moduleLoaderHelper"
)

func testConfig(javas ...config.JavaFingerprint) *config.Config {
	return &config.Config{
		Helpers: config.Helpers{
			JavaRuntimes:     jarHelper,
			JavaJBossModules: jbmHelper,
		},
		Fingerprints: config.Fingerprints{Java: javas},
	}
}

var tomcat = config.JavaFingerprint{
	RuntimeName: "Apache Tomcat",
	MainClass:   "org.apache.catalina.startup.Bootstrap",
	MainJar:     "bootstrap.jar",
}

var kafka = config.JavaFingerprint{
	RuntimeName: "Apache Kafka",
	MainClass:   "kafka.Kafka",
	MainJar:     "kafka_",
}

func java(cmdline ...string) *process.Descriptor {
	return &process.Descriptor{
		PID:         42,
		Name:        "java",
		CommandLine: cmdline,
		Cwd:         "/srv",
	}
}

var _ = Describe("Java fingerprints", func() {

	BeforeEach(test.LogToGinkgo)

	It("registers as a detector plugin", func() {
		Expect(plugger.Group[fingerprint.Detector]().Plugins()).To(ContainElement("java"))
	})

	DescribeTable("ignores non-Java processes",
		func(name string) {
			d := &Detector{}
			Expect(d.TryDetect(testConfig(tomcat), outdir, &process.Descriptor{
				Name:        name,
				CommandLine: []string{"java", "-jar", "/opt/app.jar"},
				Cwd:         "/srv",
			})).To(BeNil())
		},
		Entry("python", "python3"),
		Entry("javac-like prefix", "javac"),
		Entry("java in the middle", "javaw.exe"),
		Entry("empty name", ""),
	)

	It("accepts executable names ending in java", func() {
		d := &Detector{}
		proc := java("/usr/bin/openjava", "-jar", "app.jar")
		proc.Name = "openjava"
		Expect(d.TryDetect(testConfig(), outdir, proc)).To(
			HaveExactElements(jarHelper, outdir, "/srv/app.jar"))
	})

	DescribeTable("executable jars",
		func(proc *process.Descriptor, expected []string) {
			d := &Detector{}
			action := d.TryDetect(testConfig(tomcat), outdir, proc)
			if expected == nil {
				Expect(action).To(BeNil())
				return
			}
			Expect(action).To(Equal(fingerprint.Action(expected)))
		},
		Entry("relative jar",
			java("java", "-jar", "app.jar"),
			[]string{jarHelper, outdir, "/srv/app.jar"}),
		Entry("relative jar in sub directory",
			java("java", "-Xmx1g", "-jar", "lib/app.jar", "--server.port=8080"),
			[]string{jarHelper, outdir, "/srv/lib/app.jar"}),
		Entry("absolute jar",
			java("java", "-jar", "/opt/app/app.jar"),
			[]string{jarHelper, outdir, "/opt/app/app.jar"}),
		Entry("relative jar with unknown working directory",
			&process.Descriptor{Name: "java", CommandLine: []string{"java", "-jar", "app.jar"}},
			nil),
		Entry("absolute jar with unknown working directory",
			&process.Descriptor{Name: "java", CommandLine: []string{"java", "-jar", "/opt/app/app.jar"}},
			[]string{jarHelper, outdir, "/opt/app/app.jar"}),
		Entry("JBoss Modules",
			java("java", "-jar", "/opt/app/jboss-modules.jar", "-Djboss.home.dir=/opt/jboss"),
			[]string{jbmHelper, outdir, "/opt/jboss"}),
		Entry("JBoss Modules with home dir before jar",
			java("java", "-D[Standalone]", "-Djboss.home.dir=/opt/wildfly", "-jar", "jboss-modules.jar", "-mp", "/opt/wildfly/modules"),
			[]string{jbmHelper, outdir, "/opt/wildfly"}),
		Entry("JBoss Modules home dir containing equal signs",
			java("java", "-jar", "jboss-modules.jar", "-Djboss.home.dir=/opt/a=b"),
			[]string{jbmHelper, outdir, "/opt/a=b"}),
		Entry("JBoss Modules without home dir",
			java("java", "-jar", "/opt/app/jboss-modules.jar"),
			nil),
		Entry("JBoss Modules home dir property without value",
			java("java", "-jar", "/opt/app/jboss-modules.jar", "-Djboss.home.dir"),
			nil),
		Entry("not quite JBoss Modules",
			java("java", "-jar", "/opt/app/my-jboss-modules.jar"),
			[]string{jarHelper, outdir, "/opt/app/my-jboss-modules.jar"}),
		Entry("-jar wins over classpath",
			java("java", "-cp", "/opt/tomcat/bin/bootstrap.jar", "-jar", "app.jar", "org.apache.catalina.startup.Bootstrap"),
			[]string{jarHelper, outdir, "/srv/app.jar"}),
		Entry("JBoss Modules never falls back to classpath",
			java("java", "-cp", "/opt/tomcat/bin/bootstrap.jar", "-jar", "jboss-modules.jar", "org.apache.catalina.startup.Bootstrap"),
			nil),
	)

	DescribeTable("classpath launches",
		func(cfg *config.Config, proc *process.Descriptor, expected []string) {
			d := &Detector{}
			action := d.TryDetect(cfg, outdir, proc)
			if expected == nil {
				Expect(action).To(BeNil())
				return
			}
			Expect(action).To(Equal(fingerprint.Action(expected)))
		},
		Entry("no classpath",
			testConfig(tomcat),
			java("java", "org.apache.catalina.startup.Bootstrap"),
			nil),
		Entry("trailing -jar falls through to classpath",
			testConfig(tomcat),
			java("java", "-classpath", "/opt/tomcat/bin/bootstrap.jar", "org.apache.catalina.startup.Bootstrap", "-jar"),
			[]string{jarHelper, outdir, "/opt/tomcat/bin/bootstrap.jar"}),
		Entry("-classpath",
			testConfig(tomcat),
			java("java", "-classpath", "a.jar:bin/bootstrap.jar:c.jar", "org.apache.catalina.startup.Bootstrap", "start"),
			[]string{jarHelper, outdir, "/srv/bin/bootstrap.jar"}),
		Entry("-cp",
			testConfig(tomcat),
			java("java", "-cp", "/opt/tomcat/bin/bootstrap.jar:/opt/tomcat/bin/tomcat-juli.jar", "org.apache.catalina.startup.Bootstrap"),
			[]string{jarHelper, outdir, "/opt/tomcat/bin/bootstrap.jar"}),
		Entry("first classpath option wins",
			testConfig(tomcat),
			java("java", "-cp", "a.jar", "-classpath", "bootstrap.jar", "org.apache.catalina.startup.Bootstrap"),
			nil),
		Entry("trailing classpath option",
			testConfig(tomcat),
			java("java", "org.apache.catalina.startup.Bootstrap", "-cp"),
			nil),
		Entry("main class must be an exact token",
			testConfig(tomcat),
			java("java", "-cp", "bootstrap.jar", "org.apache.catalina.startup.BootstrapX"),
			nil),
		Entry("relative classpath jar with unknown working directory",
			testConfig(tomcat),
			&process.Descriptor{Name: "java",
				CommandLine: []string{"java", "-cp", "bin/bootstrap.jar", "org.apache.catalina.startup.Bootstrap"}},
			nil),
		Entry("absolute classpath jar with unknown working directory",
			testConfig(tomcat),
			&process.Descriptor{Name: "java",
				CommandLine: []string{"java", "-cp", "/opt/tomcat/bin/bootstrap.jar", "org.apache.catalina.startup.Bootstrap"}},
			[]string{jarHelper, outdir, "/opt/tomcat/bin/bootstrap.jar"}),
		Entry("main jar not in classpath",
			testConfig(tomcat),
			java("java", "-cp", "a.jar:b.jar", "org.apache.catalina.startup.Bootstrap"),
			nil),
		Entry("no configuration",
			nil,
			java("java", "-cp", "bootstrap.jar", "org.apache.catalina.startup.Bootstrap"),
			nil),
		Entry("first matching classpath element wins",
			testConfig(kafka),
			java("java", "-cp", "/opt/kafka/libs/kafka_2.13-3.7.0.jar:/opt/kafka/libs/kafka_2.13-3.7.0-test.jar", "kafka.Kafka", "server.properties"),
			[]string{jarHelper, outdir, "/opt/kafka/libs/kafka_2.13-3.7.0.jar"}),
		Entry("configuration order wins over command line order",
			testConfig(tomcat, kafka),
			java("java", "-cp", "kafka_2.13.jar:bootstrap.jar", "kafka.Kafka", "org.apache.catalina.startup.Bootstrap"),
			[]string{jarHelper, outdir, "/srv/bootstrap.jar"}),
		Entry("later entry when earlier one has no jar",
			testConfig(tomcat, kafka),
			java("java", "-cp", "kafka_2.13.jar", "kafka.Kafka", "org.apache.catalina.startup.Bootstrap"),
			[]string{jarHelper, outdir, "/srv/kafka_2.13.jar"}),
	)

	It("uses default helpers", func() {
		d := &Detector{}
		Expect(d.TryDetect(nil, outdir, java("java", "-jar", "/app.jar"))).To(
			HaveExactElements(config.DefaultJavaRuntimesHelper, outdir, "/app.jar"))
		Expect(d.TryDetect(nil, outdir, java("java", "-jar", "jboss-modules.jar", "-Djboss.home.dir=/jb"))).To(
			HaveExactElements(config.DefaultJavaJBossModulesHelper, outdir, "/jb"))
	})

	It("leaves the process descriptor untouched", func() {
		d := &Detector{}
		proc := java("java", "-cp", "a.jar:bootstrap.jar", "org.apache.catalina.startup.Bootstrap")
		_ = d.TryDetect(testConfig(tomcat), outdir, proc)
		Expect(proc.CommandLine).To(HaveExactElements(
			"java", "-cp", "a.jar:bootstrap.jar", "org.apache.catalina.startup.Bootstrap"))
	})

})
