package reporters

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-plans/plans"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// runImmediately is a minimal host that runs each test as soon as it is registered.
var runImmediately = plans.HostFunc(func(ctx context.Context, name string, fn func(context.Context) error) {
	_ = fn(ctx)
})

func samplePlan(t *testing.T) *plans.Document {
	doc, err := plans.Define("store", func(p *plans.PlanScope) {
		p.Suite("writes", func(s *plans.SuiteScope) {
			s.Case("put", plans.Sync(func() {}))
			s.Case("overwrite", plans.SyncE(func() error { return errors.New("expected 2\nbut got 1") }))
		})
		p.Suite("reads", func(s *plans.SuiteScope) {
			s.BeforeAll(plans.SyncE(func() error { return errors.New("no data") }))
			s.Case("get", plans.Sync(func() {}))
		})
	})
	require.NoError(t, err)
	return doc
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	err := plans.NewEngine(samplePlan(t), runImmediately,
		plans.WithReporter(&Console{Out: &buf})).Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, strings.Join([]string{
		"store",
		"  writes",
		"    PASS put",
		"    FAIL overwrite: expected 2 ...",
		"  reads",
		`  suite aborted: beforeAllCases hook failed in plan "store", suite "reads": no data`,
		`plan aborted: beforeAllCases hook failed in plan "store", suite "reads": no data`,
	}, "\n")+"\n", buf.String())
}

func TestConsoleDoesNotTreatMessagesAsFormatStrings(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{Out: &buf, Indent: "-"}
	c.CaseFinished(plans.CaseID{Case: "100%"}, errors.New("50% done"))
	assert.Equal(t, "--FAIL 100%: 50% done\n", buf.String())
}

func TestJSONLines(t *testing.T) {
	var buf bytes.Buffer
	err := plans.NewEngine(samplePlan(t), runImmediately,
		plans.WithReporter(&JSONLines{Out: &buf})).Run(context.Background())
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{
		`{"event":"planStarted","plan":"store"}`,
		`{"event":"suiteStarted","plan":"store","suite":"writes"}`,
		`{"event":"caseStarted","plan":"store","suite":"writes","case":"put"}`,
		`{"event":"caseFinished","plan":"store","suite":"writes","case":"put"}`,
		`{"event":"caseStarted","plan":"store","suite":"writes","case":"overwrite"}`,
		`{"event":"caseFinished","plan":"store","suite":"writes","case":"overwrite","error":"expected 2\nbut got 1"}`,
		`{"event":"suiteFinished","plan":"store","suite":"writes"}`,
		`{"event":"suiteStarted","plan":"store","suite":"reads"}`,
		`{"event":"suiteFinished","plan":"store","suite":"reads",` +
			`"error":"beforeAllCases hook failed in plan \"store\", suite \"reads\": no data"}`,
		`{"event":"planFinished","plan":"store",` +
			`"error":"beforeAllCases hook failed in plan \"store\", suite \"reads\": no data"}`,
	}
	require.Len(t, lines, len(expected))
	for i := range expected {
		assert.JSONEq(t, expected[i], lines[i])
	}
}

func TestJSONLinesWithClock(t *testing.T) {
	var buf bytes.Buffer
	j := &JSONLines{Out: &buf, Clock: func() time.Time { return time.Unix(1, 500000000) }}
	j.PlanStarted("p")
	assert.JSONEq(t, `{"event":"planStarted","plan":"p","time":1500}`, buf.String())
}

func TestMulti(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	r := Multi(&Console{Out: &buf1}, &JSONLines{Out: &buf2})
	r.PlanStarted("p")
	r.SuiteStarted("p", "s")
	r.CaseStarted(plans.CaseID{Plan: "p", Suite: "s", Case: "c"})
	r.CaseFinished(plans.CaseID{Plan: "p", Suite: "s", Case: "c"}, nil)
	r.SuiteFinished("p", "s", nil)
	r.PlanFinished("p", nil)

	assert.Equal(t, "p\n  s\n    PASS c\n", buf1.String())
	assert.Len(t, strings.Split(strings.TrimSpace(buf2.String()), "\n"), 6)
}

func TestConsoleIndentIsNotAFormatString(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{Out: &buf, Indent: "%d"}
	c.SuiteStarted("P", "S")
	assert.Equal(t, "%dS\n", buf.String())
}
