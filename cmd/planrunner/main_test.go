package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/launchdarkly/go-test-plans/framework"
	"github.com/launchdarkly/go-test-plans/selftests"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestRootCommandPasses(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Running plan: "+selftests.PlanName)
	assert.Contains(t, out.String(), "All tests passed: 12 passed, 0 failed, 0 skipped")
}

func TestRootCommandWithFilter(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--run", "registration"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "skip any not matching \"registration\"")
	assert.Contains(t, out.String(), "All tests passed: 4 passed, 0 failed, 0 skipped")
}

func TestRootCommandRejectsBadRegex(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--run", "("})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestJSONOutput(t *testing.T) {
	var out bytes.Buffer
	params := commandParams{json: true}
	require.NoError(t, params.filters.MustMatch.Set("hook order"))

	results, err := runContract(context.Background(), &out, params)

	require.NoError(t, err)
	assert.True(t, results.OK())
	var events int
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "{") {
			events++
		}
	}
	// plan started, 4 suites started and finished, 2 cases started and finished, plan finished
	assert.Equal(t, 1+4*2+2*2+1, events)
}

func TestTraceMismatchIsReportedAsFailure(t *testing.T) {
	rec := &selftests.Recorder{}

	results := checkTrace(framework.Results{}, rec)

	require.Len(t, results.Failures, 1)
	assert.Equal(t, selftests.PlanName+"/execution order", results.Failures[0].TestID.String())
	assert.NotEmpty(t, results.Failures[0].Errors)
}

func TestRerunCommand(t *testing.T) {
	params := commandParams{debugAll: true, tree: true}
	id := framework.TestID{Path: []string{"engine contract/hook order/first case"}}

	assert.Equal(t,
		`planrunner --run '^engine contract/hook order/first case$' --debug --tree`,
		params.rerunCommand("planrunner", id))
}
