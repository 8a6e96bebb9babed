// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package matcher

import (
	"fmt"

	"github.com/siemens/runtimefinder"
	"github.com/siemens/runtimefinder/fingerprint"

	g "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// HaveHelper succeeds if ACTUAL is either a fingerprint.Action, or a
// runtimefinder.Result or *runtimefinder.Result with an action, that invokes
// the specified helper. Alternatively of a helper path string, a GomegaMatcher
// can also be specified for matching the helper path, such as HaveSuffix.
func HaveHelper(helper interface{}) types.GomegaMatcher {
	return g.WithTransform(actionOf("HaveHelper"), g.WithTransform(
		func(action fingerprint.Action) string { return action.Helper() },
		stringMatcher("helper", helper)))
}

// HaveHelperArgs succeeds if ACTUAL is either a fingerprint.Action, or a
// runtimefinder.Result or *runtimefinder.Result with an action, that passes
// exactly the specified helper-specific arguments (after the output
// directory).
func HaveHelperArgs(args ...string) types.GomegaMatcher {
	var argsMatcher types.GomegaMatcher = g.BeEmpty()
	if len(args) > 0 {
		argsMatcher = g.Equal(args)
	}
	return g.WithTransform(actionOf("HaveHelperArgs"), g.WithTransform(
		func(action fingerprint.Action) []string { return action.Args() },
		argsMatcher))
}

// actionOf returns a transformation function returning the action of ACTUAL.
func actionOf(name string) func(actual interface{}) (fingerprint.Action, error) {
	return func(actual interface{}) (fingerprint.Action, error) {
		switch actual := actual.(type) {
		case fingerprint.Action:
			return actual, nil
		case runtimefinder.Result:
			return actual.Action, nil
		case *runtimefinder.Result:
			return actual.Action, nil
		}
		return nil, fmt.Errorf("%s expects a fingerprint.Action, runtimefinder.Result or *runtimefinder.Result, but got %T",
			name, actual)
	}
}

func stringMatcher(what string, expected interface{}) types.GomegaMatcher {
	switch expected := expected.(type) {
	case string:
		return g.Equal(expected)
	case types.GomegaMatcher:
		return expected
	}
	panic(what + " argument must be string or GomegaMatcher")
}
