package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsctl/dsctl/types"
)

func sampleResources() []types.Resource {
	return []types.Resource{
		{
			OCID:           "ocid1.datasafetargetdatabase.oc1..t1",
			Kind:           types.KindTarget,
			DisplayName:    "Prod-DB1",
			LifecycleState: types.StateActive,
			DatabaseType:   "DATABASE_CLOUD_SERVICE",
		},
		{
			OCID:           "ocid1.datasafetargetdatabase.oc1..t2",
			Kind:           types.KindTarget,
			DisplayName:    "Test-DB1",
			LifecycleState: types.StateInactive,
		},
	}
}

func TestPrintResourcesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResources(&buf, "table", sampleResources()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Prod-DB1")
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, "ocid1.datasafetargetdatabase.oc1..t2")
}

func TestPrintResourcesTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResources(&buf, "table", nil))
	assert.Contains(t, buf.String(), "no resources found")
}

func TestPrintResourcesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResources(&buf, "json", sampleResources()))

	var decoded []types.Resource
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Prod-DB1", decoded[0].DisplayName)
}

func TestPrintResourcesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResources(&buf, "csv", sampleResources()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,state,type,ocid", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Prod-DB1,ACTIVE,"))
}

func TestValidOutput(t *testing.T) {
	assert.True(t, validOutput("table"))
	assert.True(t, validOutput("json"))
	assert.True(t, validOutput("csv"))
	assert.False(t, validOutput("yaml"))
}

func TestParseKind(t *testing.T) {
	kind, err := parseKind("target")
	require.NoError(t, err)
	assert.Equal(t, types.KindTarget, kind)

	kind, err = parseKind("connector")
	require.NoError(t, err)
	assert.Equal(t, types.KindConnector, kind)

	_, err = parseKind("bucket")
	assert.Error(t, err)
}
