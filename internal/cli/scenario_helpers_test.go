package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const passingScenario = `name: basic
description: "Advance then show"
token: run-001
steps:
  - op: advance
    delta: 42
    expect:
      result: "tick:0000002A"
  - op: show
`

// passingGolden is the canonical trace of passingScenario.
const passingGolden = `{"events":[` +
	`{"clock":"tick:0000002A","delta":42,"op":"advance","result":"tick:0000002A","seq":1,"tick":"tick:00000000"},` +
	`{"clock":"tick:0000002A","op":"show","result":"tick:0000002A","seq":2,"tick":"tick:0000002A"}` +
	`],"scenario":"basic","start":"tick:00000000","token":"run-001"}`

const failingScenario = `name: failing
description: "Expects the wrong fault"
steps:
  - op: rewind
    delta: 1
    expect:
      fatal: overflow
`

const untokenedScenario = `name: untokened
description: "No token set"
start: 7
steps:
  - op: sub
    delta: 8
    expect:
      fatal: underflow
`

const invalidScenario = `name: invalid
description: "Unknown op"
steps:
  - op: multiply
    delta: 2
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
